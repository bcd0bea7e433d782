package deps

import (
	"blog/internal/config"
	demail "blog/internal/core/domain/email"
	dl "blog/internal/core/domain/logging"
	dpicture "blog/internal/core/domain/picture"
	"blog/internal/core/domain/post"
	drl "blog/internal/core/domain/rate_limiter"
	duow "blog/internal/core/domain/unit_of_work"
	"blog/internal/core/domain/user"
	dbpost "blog/internal/db/post"
	uow "blog/internal/db/unit_of_work"
	dbuser "blog/internal/db/user"
	"blog/internal/implementations/email"
	"blog/internal/implementations/logging"
	passwordhasher "blog/internal/implementations/password_hasher"
	passwordresetter "blog/internal/implementations/password_resetter"
	"blog/internal/implementations/picture"
	postfeed "blog/internal/implementations/post_feed"
	ratelimiter "blog/internal/implementations/rate_limiter"
	"blog/internal/implementations/session"
	"blog/internal/rabbitmq"
	emailqueue "blog/internal/rabbitmq/publishers/email_queue"
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/aws/retry"
	awsConfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/getsentry/sentry-go"
	"github.com/go-redis/redis/v9"
	"github.com/jackc/pgx/v4/pgxpool"
	"github.com/r3labs/sse/v2"
)

type Deps struct {
	Config    *config.Config
	AwsConfig aws.Config
	Logger    dl.Logger

	DB        *pgxpool.Pool
	Redis     *redis.Client
	Rabbitmq  *rabbitmq.Connection
	SseServer *sse.Server

	Now func() time.Time

	UnitOfWork        duow.UnitOfWork
	UserRepository    user.UserRepository
	SessionRepository user.SessionRepository
	PostRepository    post.Repository

	RateLimiter drl.RateLimiter

	// EmailSender delivers emails right away, OutgoingEmailSender is what
	// request handling uses and goes through the queue when one is configured.
	EmailSender         demail.Sender
	OutgoingEmailSender demail.Sender

	UserSessionTokenGenerator user.SessionTokenGenerator
	PasswordHasher            user.PasswordHasher
	PasswordResetter          user.PasswordResetter
	PasswordResetTokenSender  user.PasswordResetTokenSender

	PictureProcessor dpicture.Processor
	PictureStorage   dpicture.Storage
	PicturesDir      string

	PostFeed post.Feed
}

func InitDeps() (*Deps, func()) {
	deps := &Deps{}

	deps.initConfig()
	deps.initAwsConfig()

	closeLogger := deps.initLogger()
	closePgxPool := deps.initPgxPool()
	closeRedisClient := deps.initRedisClient()
	closeRabbitmqConn := deps.initRabbitmqConnection()
	closeSseServer := deps.initSseServer()

	deps.Now = func() time.Time { return time.Now().UTC() }

	deps.UnitOfWork = uow.NewPgxUnitOfWork(deps.DB)
	deps.UserRepository = dbuser.NewPgxRepository(deps.DB)
	deps.SessionRepository = dbuser.NewPgxSessionRepository(deps.DB)
	deps.PostRepository = dbpost.NewPgxPostRepository(deps.DB)

	deps.RateLimiter = ratelimiter.NewRedis(deps.Redis, deps.Logger, deps.Now)

	deps.EmailSender = deps.initEmailSender()
	closeEmailQueue := deps.initOutgoingEmailSender()

	deps.UserSessionTokenGenerator = session.NewTokenGenerator()
	deps.PasswordHasher = passwordhasher.NewBcrypt(deps.Config.PasswordPepper, deps.Config.BcryptHasherCost)
	deps.PasswordResetter = passwordresetter.NewHMAC(
		passwordresetter.NewKeys(deps.Config.SecretKey, deps.Config.PreviousSecretKeys...),
		deps.Config.PasswordResetValidDuration,
		deps.Now,
	)
	deps.PasswordResetTokenSender = email.NewPasswordResetTokenSender(
		deps.OutgoingEmailSender,
		deps.Config.PasswordResetBaseURL,
	)

	deps.PictureProcessor = picture.NewThumbnailer(picture.DefaultMaxSide, deps.Config.PictureMaxBytes)
	deps.PictureStorage = deps.initPictureStorage()

	deps.PostFeed = postfeed.NewSSE(deps.SseServer)

	flushSentry := deps.initSentry()

	return deps, func() {
		closeFuncs := []func(){
			closeSseServer,
			closeEmailQueue,
			closeRabbitmqConn,
			closeRedisClient,
			closePgxPool,
			flushSentry,
		}

		var wg sync.WaitGroup
		wg.Add(len(closeFuncs))
		for _, closeFunc := range closeFuncs {
			closeFunc := closeFunc
			go func() {
				closeFunc()
				wg.Done()
			}()
		}

		wg.Wait()
		closeLogger()
	}
}

func (deps *Deps) initConfig() {
	config, err := config.Load()
	if err != nil {
		panic(err)
	}
	deps.Config = config
}

func (deps *Deps) initAwsConfig() {
	options := []func(*awsConfig.LoadOptions) error{
		awsConfig.WithRegion(deps.Config.AwsRegion),
		awsConfig.WithRetryer(func() aws.Retryer {
			return retry.AddWithMaxAttempts(
				retry.AddWithMaxBackoffDelay(retry.NewStandard(), time.Second*5),
				3,
			)
		}),
	}
	if deps.Config.AwsAccessKey != "" {
		options = append(options, awsConfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(
				deps.Config.AwsAccessKey,
				deps.Config.AwsSecretKey,
				"",
			),
		))
	}

	cfg, err := awsConfig.LoadDefaultConfig(context.Background(), options...)
	if err != nil {
		panic(err)
	}
	deps.AwsConfig = cfg
}

func (deps *Deps) initLogger() func() {
	logger := logging.NewZapLogger(deps.Config.Debug)
	deps.Logger = logger
	return func() { logger.Sync() }
}

func (deps *Deps) initPgxPool() func() {
	db, err := pgxpool.Connect(context.Background(), deps.Config.PostgresqlURL)
	if err != nil {
		deps.Logger.Error(context.Background(), "Could not connect to DB.", dl.Entry("err", err))
		panic(err)
	}
	deps.DB = db
	return func() {
		deps.Logger.Info(context.Background(), "Shutting down DB connection.")
		db.Close()
		deps.Logger.Info(context.Background(), "DB connection shut down.")
	}
}

func (deps *Deps) initRedisClient() func() {
	redisOpt, err := redis.ParseURL(deps.Config.RedisURL)
	if err != nil {
		deps.Logger.Error(context.Background(), "Could not connect to Redis.", dl.Entry("err", err))
		panic(err)
	}
	redisClient := redis.NewClient(redisOpt)
	deps.Redis = redisClient
	return func() {
		deps.Logger.Info(context.Background(), "Shutting down Redis client.")
		redisClient.Close()
		deps.Logger.Info(context.Background(), "Redis client shut down.")
	}
}

func (deps *Deps) initRabbitmqConnection() func() {
	if !deps.Config.UseEmailQueue() {
		deps.Logger.Info(context.Background(), "RabbitMQ is disabled, emails are sent directly.")
		return func() {}
	}

	rabbitmqConnection, err := rabbitmq.Dial(deps.Config.RabbitmqURL, deps.Logger)
	if err != nil {
		deps.Logger.Error(context.Background(), "Could not connect to RabbitMQ.", dl.Entry("err", err))
		panic("could not connect to RabbitMQ")
	}
	deps.Rabbitmq = rabbitmqConnection
	return func() {
		deps.Logger.Info(context.Background(), "Shutting down RabbitMQ connection.")
		rabbitmqConnection.Close()
		deps.Logger.Info(context.Background(), "RabbitMQ connection shut down.")
	}
}

func (deps *Deps) initEmailSender() demail.Sender {
	if deps.Config.EmailTransport == config.EMAIL_TRANSPORT_SMTP {
		return email.NewSMTP(email.SMTPConfig{
			Host:     deps.Config.SmtpHost,
			Port:     deps.Config.SmtpPort,
			Username: deps.Config.SmtpUsername,
			Password: deps.Config.SmtpPassword,
			From:     deps.Config.EmailSender,
			Timeout:  deps.Config.SmtpTimeout,
			Insecure: deps.Config.SmtpInsecure,
		})
	}
	return email.NewSES(deps.AwsConfig, deps.Config.EmailSender)
}

func (deps *Deps) initOutgoingEmailSender() func() {
	if deps.Rabbitmq == nil {
		deps.OutgoingEmailSender = deps.EmailSender
		return func() {}
	}

	rabbitmqChannel, err := deps.Rabbitmq.Channel()
	if err != nil {
		deps.Logger.Error(context.Background(), "Could not create RabbitMQ channel.", dl.Entry("err", err))
		panic(err)
	}
	if err := rabbitmqChannel.DeclareQueue(deps.Config.EmailQueue); err != nil {
		deps.Logger.Error(context.Background(), "Could not create RabbitMQ queue.", dl.Entry("err", err))
		panic(err)
	}

	deps.OutgoingEmailSender = emailqueue.NewRabbitMQ(
		deps.Logger,
		rabbitmqChannel,
		deps.Config.EmailQueue,
		deps.Now,
	)

	return func() {
		deps.Logger.Info(context.Background(), "Shutting down email queue publisher.")
		rabbitmqChannel.Close()
		deps.Logger.Info(context.Background(), "Email queue publisher shut down.")
	}
}

func (deps *Deps) initPictureStorage() dpicture.Storage {
	if deps.Config.PictureStorage == config.PICTURE_STORAGE_S3 {
		client := s3.NewFromConfig(deps.AwsConfig, func(o *s3.Options) {
			if deps.Config.S3Endpoint != "" {
				o.EndpointResolver = s3.EndpointResolverFromURL(deps.Config.S3Endpoint)
				o.UsePathStyle = true
			}
		})
		return picture.NewS3(client, deps.Config.S3Bucket, deps.Config.S3Prefix)
	}

	storage, err := picture.NewFilesystem(deps.Config.PicturesDir)
	if err != nil {
		deps.Logger.Error(context.Background(), "Could not create pictures directory.", dl.Entry("err", err))
		panic(err)
	}
	deps.PicturesDir = storage.Dir()
	return storage
}

func (deps *Deps) initSseServer() func() {
	deps.SseServer = sse.New()
	deps.SseServer.AutoStream = false
	deps.SseServer.AutoReplay = false
	return func() {
		deps.Logger.Info(context.Background(), "Shutting down SSE server.")
		deps.SseServer.Close()
		deps.Logger.Info(context.Background(), "SSE server shut down.")
	}
}

func (deps *Deps) initSentry() func() {
	if deps.Config.SentryDsn != nil {
		err := sentry.Init(sentry.ClientOptions{
			Dsn:              deps.Config.SentryDsn.String(),
			TracesSampleRate: 0.01,
		})
		if err != nil {
			panic(fmt.Sprintf("could not init Sentry: %v\n", err))
		}
		deps.Logger.Info(context.Background(), "Sentry has been successfully initialized.")
		return func() {
			ok := sentry.Flush(5 * time.Second)
			deps.Logger.Info(context.Background(), "Sentry events flushed.", dl.Entry("ok", ok))
		}
	}

	deps.Logger.Info(context.Background(), "Sentry is disabled.")
	return func() {}
}
