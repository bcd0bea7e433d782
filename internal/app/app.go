package app

import (
	"blog/internal/app/deps"
	"blog/internal/app/services"
	"blog/internal/core/domain/logging"
	"blog/internal/http/handlers/account/me"
	updateaccount "blog/internal/http/handlers/account/update_account"
	"blog/internal/http/handlers/auth"
	loginwithemail "blog/internal/http/handlers/auth/log_in_with_email"
	logout "blog/internal/http/handlers/auth/log_out"
	"blog/internal/http/handlers/auth/register"
	resetpassword "blog/internal/http/handlers/auth/reset_password"
	sendpasswordresettoken "blog/internal/http/handlers/auth/send_password_reset_token"
	"blog/internal/http/handlers/fallback"
	createpost "blog/internal/http/handlers/posts/create_post"
	deletepost "blog/internal/http/handlers/posts/delete_post"
	"blog/internal/http/handlers/posts/events"
	getpost "blog/internal/http/handlers/posts/get_post"
	listposts "blog/internal/http/handlers/posts/list_posts"
	listuserposts "blog/internal/http/handlers/posts/list_user_posts"
	updatepost "blog/internal/http/handlers/posts/update_post"
	"blog/internal/http/handlers/static"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/r3labs/sse/v2"
)

const PROFILE_PICS_PREFIX = "/static/profile_pics/"

type RouterOptions struct {
	Log            logging.Logger
	SseServer      *sse.Server
	AllowedOrigins []string
	// PicturesDir is served under PROFILE_PICS_PREFIX when not empty.
	PicturesDir       string
	MaxPictureRequest int64
}

func NewRouter(options RouterOptions, s *services.Services) http.Handler {
	authRouter := chi.NewRouter()
	authRouter.Method(http.MethodPost, "/register", register.New(s.SignUp))
	authRouter.Method(http.MethodPost, "/login", loginwithemail.New(s.LogInWithEmail))
	authRouter.Method(http.MethodPost, "/logout", logout.New(s.LogOut))
	authRouter.Method(
		http.MethodPost,
		"/password_reset/token",
		sendpasswordresettoken.New(s.SendPasswordResetToken),
	)
	authRouter.Method(http.MethodPut, "/password_reset", resetpassword.New(s.ResetPassword))

	accountRouter := chi.NewRouter()
	accountRouter.Use(auth.SetAuthTokenToContext)
	accountRouter.Method(http.MethodGet, "/", me.New(s.GetUserBySessionToken))
	accountRouter.Method(http.MethodPut, "/", updateaccount.New(s.UpdateAccount, options.MaxPictureRequest))

	postsRouter := chi.NewRouter()
	postsRouter.Use(auth.SetAuthTokenToContext)
	postsRouter.Method(http.MethodGet, "/", listposts.New(s.ListPosts))
	postsRouter.Method(http.MethodPost, "/", createpost.New(s.CreatePost))
	postsRouter.Method(http.MethodGet, "/events", events.New(options.Log, options.SseServer))
	postsRouter.Method(http.MethodGet, "/{postID:[0-9]+}", getpost.New(s.GetPost))
	postsRouter.Method(http.MethodPatch, "/{postID:[0-9]+}", updatepost.New(s.UpdatePost))
	postsRouter.Method(http.MethodDelete, "/{postID:[0-9]+}", deletepost.New(s.DeletePost))

	usersRouter := chi.NewRouter()
	usersRouter.Method(http.MethodGet, "/{username}/posts", listuserposts.New(s.ListUserPosts))

	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(fallback.Recoverer(options.Log))
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   options.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: false,
		MaxAge:           300, // Maximum value not ignored by any of major browsers
	}))
	router.NotFound(fallback.NotFound)
	router.MethodNotAllowed(fallback.MethodNotAllowed)

	router.Mount("/auth", authRouter)
	router.Mount("/account", accountRouter)
	router.Mount("/posts", postsRouter)
	router.Mount("/users", usersRouter)
	if options.PicturesDir != "" {
		router.Method(
			http.MethodGet,
			PROFILE_PICS_PREFIX+"*",
			static.New(PROFILE_PICS_PREFIX, options.PicturesDir),
		)
	}

	return router
}

func InitHttpServer(deps *deps.Deps, s *services.Services) *http.Server {
	router := NewRouter(RouterOptions{
		Log:               deps.Logger,
		SseServer:         deps.SseServer,
		AllowedOrigins:    deps.Config.AllowedOrigins,
		PicturesDir:       deps.PicturesDir,
		MaxPictureRequest: deps.Config.PictureMaxBytes + 1<<20,
	}, s)

	return &http.Server{
		Handler:           router,
		Addr:              deps.Config.Address(),
		ReadHeaderTimeout: 5 * time.Second,
	}
}
