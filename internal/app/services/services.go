package services

import (
	"blog/internal/app/deps"
	drl "blog/internal/core/domain/rate_limiter"
	"blog/internal/core/services"
	"blog/internal/core/services/auth"
	createpost "blog/internal/core/services/create_post"
	deletepost "blog/internal/core/services/delete_post"
	getpost "blog/internal/core/services/get_post"
	getuserbysessiontoken "blog/internal/core/services/get_user_by_session_token"
	listposts "blog/internal/core/services/list_posts"
	listuserposts "blog/internal/core/services/list_user_posts"
	loginwithemail "blog/internal/core/services/log_in_with_email"
	logout "blog/internal/core/services/log_out"
	ratelimiting "blog/internal/core/services/rate_limiting"
	resetpassword "blog/internal/core/services/reset_password"
	sendemail "blog/internal/core/services/send_email"
	sendpasswordresettoken "blog/internal/core/services/send_password_reset_token"
	signup "blog/internal/core/services/sign_up"
	updateaccount "blog/internal/core/services/update_account"
	updatepost "blog/internal/core/services/update_post"
)

type Services struct {
	SignUp                 services.Service[signup.Input, signup.Result]
	LogInWithEmail         services.Service[loginwithemail.Input, loginwithemail.Result]
	LogOut                 services.Service[logout.Input, logout.Result]
	SendPasswordResetToken services.Service[sendpasswordresettoken.Input, sendpasswordresettoken.Result]
	ResetPassword          services.Service[resetpassword.Input, resetpassword.Result]
	GetUserBySessionToken  services.Service[getuserbysessiontoken.Input, getuserbysessiontoken.Result]
	UpdateAccount          services.Service[updateaccount.Input, updateaccount.Result]

	CreatePost    services.Service[createpost.Input, createpost.Result]
	GetPost       services.Service[getpost.Input, getpost.Result]
	UpdatePost    services.Service[updatepost.Input, updatepost.Result]
	DeletePost    services.Service[deletepost.Input, deletepost.Result]
	ListPosts     services.Service[listposts.Input, listposts.Result]
	ListUserPosts services.Service[listuserposts.Input, listuserposts.Result]

	SendEmail services.Service[sendemail.Input, sendemail.Result]
}

func InitServices(deps *deps.Deps) *Services {
	return &Services{
		SignUp: signup.New(
			deps.Logger,
			deps.UnitOfWork,
			deps.PasswordHasher,
			deps.Now,
		),
		LogInWithEmail: ratelimiting.WithRateLimiting(
			deps.Logger,
			deps.RateLimiter,
			drl.Limit{Interval: drl.Hour, Value: 10},
			loginwithemail.New(
				deps.Logger,
				deps.UserRepository,
				deps.SessionRepository,
				deps.PasswordHasher,
				deps.UserSessionTokenGenerator,
				loginwithemail.SessionTTL{
					Default:  deps.Config.SessionTTL,
					Remember: deps.Config.RememberSessionTTL,
				},
				deps.Now,
			),
		),
		LogOut: logout.New(
			deps.Logger,
			deps.SessionRepository,
		),
		SendPasswordResetToken: ratelimiting.WithRateLimiting(
			deps.Logger,
			deps.RateLimiter,
			drl.Limit{Interval: drl.Hour, Value: 3},
			sendpasswordresettoken.New(
				deps.Logger,
				deps.UserRepository,
				deps.PasswordResetter,
				deps.PasswordResetTokenSender,
			),
		),
		ResetPassword: resetpassword.New(
			deps.Logger,
			deps.UserRepository,
			deps.PasswordResetter,
			deps.PasswordHasher,
		),
		GetUserBySessionToken: getuserbysessiontoken.New(
			deps.Logger,
			deps.SessionRepository,
		),
		UpdateAccount: auth.WithAuthentication(
			deps.SessionRepository,
			updateaccount.New(
				deps.Logger,
				deps.UnitOfWork,
				deps.PictureProcessor,
				deps.PictureStorage,
			),
		),
		CreatePost: auth.WithAuthentication(
			deps.SessionRepository,
			createpost.New(
				deps.Logger,
				deps.PostRepository,
				deps.PostFeed,
				deps.Now,
			),
		),
		GetPost: getpost.New(
			deps.Logger,
			deps.PostRepository,
		),
		UpdatePost: auth.WithAuthentication(
			deps.SessionRepository,
			updatepost.New(
				deps.Logger,
				deps.UnitOfWork,
				deps.PostFeed,
			),
		),
		DeletePost: auth.WithAuthentication(
			deps.SessionRepository,
			deletepost.New(
				deps.Logger,
				deps.UnitOfWork,
				deps.PostFeed,
			),
		),
		ListPosts: listposts.New(
			deps.Logger,
			deps.PostRepository,
		),
		ListUserPosts: listuserposts.New(
			deps.Logger,
			deps.UserRepository,
			deps.PostRepository,
		),
		SendEmail: sendemail.New(
			deps.Logger,
			deps.EmailSender,
		),
	}
}
