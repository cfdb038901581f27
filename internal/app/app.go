package app

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/showtix/showtix/internal/domain"
	appmiddleware "github.com/showtix/showtix/internal/middleware"
	"github.com/showtix/showtix/internal/repository"
	appvalidator "github.com/showtix/showtix/internal/validator"
	"github.com/showtix/showtix/internal/vcs"
)

var version = vcs.Version()

type DBConfig struct {
	DSN         string
	MaxConns    int
	MaxIdleTime time.Duration
}

type Config struct {
	Port int
	Env  string
	DB   DBConfig
}

type Application struct {
	config      Config
	logger      *slog.Logger
	db          *pgxpool.Pool
	validator   *validator.Validate
	userRepo    domain.UserRepository
	movieRepo   domain.MovieRepository
	showRepo    domain.ShowRepository
	theaterRepo domain.TheaterRepository
	seatRepo    domain.SeatRepository
	bookingRepo domain.BookingRepository
	paymentRepo domain.PaymentRepository
}

func NewApp(
	cfg Config,
	logger *slog.Logger,
	db *pgxpool.Pool,
	validate *validator.Validate,
	userRepo domain.UserRepository,
	movieRepo domain.MovieRepository,
	showRepo domain.ShowRepository,
	theaterRepo domain.TheaterRepository,
	seatRepo domain.SeatRepository,
	bookingRepo domain.BookingRepository,
	paymentRepo domain.PaymentRepository,
) *Application {
	return &Application{
		config:      cfg,
		logger:      logger,
		db:          db,
		validator:   validate,
		userRepo:    userRepo,
		movieRepo:   movieRepo,
		showRepo:    showRepo,
		theaterRepo: theaterRepo,
		seatRepo:    seatRepo,
		bookingRepo: bookingRepo,
		paymentRepo: paymentRepo,
	}
}

func Run() error {
	var cfg Config

	flag.IntVar(&cfg.Port, "port", 4000, "API server port")
	flag.StringVar(&cfg.Env, "env", "development", "Environment (development|staging|production)")
	flag.StringVar(&cfg.DB.DSN, "db-dsn", os.Getenv("SHOWTIX_DB_DSN"), "PostgreSQL DSN")
	flag.IntVar(&cfg.DB.MaxConns, "db-max-conns", 25, "PostgreSQL max connections")
	flag.DurationVar(&cfg.DB.MaxIdleTime, "db-max-idle-time", 15*time.Minute, "PostgreSQL max connection idle time")

	displayVersion := flag.Bool("version", false, "Display version and exit")

	flag.Parse()

	if *displayVersion {
		fmt.Printf("Version:\t%s\n", version)
		return nil
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	db, err := NewDatabasePool(cfg)
	if err != nil {
		return err
	}
	defer db.Close()

	logger.Info("database connection pool established")

	app := NewApp(
		cfg,
		logger,
		db,
		appvalidator.NewValidator(),
		repository.NewPostgresUserRepository(db),
		repository.NewPostgresMovieRepository(db),
		repository.NewPostgresShowRepository(db),
		repository.NewPostgresTheaterRepository(db),
		repository.NewPostgresSeatRepository(db),
		repository.NewPostgresBookingRepository(db),
		repository.NewPostgresPaymentRepository(db),
	)

	return app.serve()
}

func NewDatabasePool(cfg Config) (*pgxpool.Pool, error) {
	poolCfg, err := pgxpool.ParseConfig(cfg.DB.DSN)
	if err != nil {
		return nil, err
	}

	poolCfg.MaxConns = int32(cfg.DB.MaxConns)
	poolCfg.MaxConnIdleTime = cfg.DB.MaxIdleTime

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	db, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, err
	}

	if err = db.Ping(ctx); err != nil {
		db.Close()
		return nil, err
	}

	return db, nil
}

func (app *Application) Routes() http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(app.requestLogger)
	r.Use(appmiddleware.RecoverPanic)

	r.NotFound(appmiddleware.NotFoundHandler)

	r.Get("/health", app.GetHealth)

	r.Post("/users", app.RegisterUser)
	r.Get("/users/{email}/bookings", app.GetUserBookings)

	r.Route("/bookings", func(r chi.Router) {
		r.Post("/", app.CreateBooking)
		r.Get("/pending/users", app.ListUsersWithPendingBookings)
		r.Post("/cancel-pending", app.CancelPendingBookings)
		r.Delete("/cancelled", app.PurgeCancelledBookings)

		r.Route("/{bookingId}", func(r chi.Router) {
			r.Patch("/status", app.UpdateBookingStatus)
			r.Get("/alternative-seats", app.GetAlternativeSeats)
			r.Get("/seat", app.GetBookingSeat)
			r.Put("/seat", app.ReassignSeat)
			r.Get("/payment", app.GetBookingPayment)
			r.Post("/payment", app.RecordPayment)
			r.Delete("/payment", app.ClearPayment)
		})
	})

	r.Post("/showings", app.AddShowing)

	r.Route("/shows", func(r chi.Router) {
		r.Get("/", app.GetShowsStartingAt)
		r.Delete("/", app.PurgeShowsByDate)
		r.Get("/{showId}/theaters", app.GetShowTheaters)
	})

	r.Get("/movies", app.GetMovies)
	r.Get("/movies/{movieId}", app.GetMovie)
	r.Get("/cinemas/{cinemaId}/showings", app.GetCinemaShowings)

	return r
}

func (app *Application) serve() error {
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", app.config.Port),
		Handler:      app.Routes(),
		IdleTimeout:  time.Minute,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		ErrorLog:     slog.NewLogLogger(app.logger.Handler(), slog.LevelError),
	}

	shutdownError := make(chan error)

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		s := <-quit

		app.logger.Info("shutting down server", "signal", s.String())

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		shutdownError <- srv.Shutdown(ctx)
	}()

	app.logger.Info("starting server", "addr", srv.Addr, "env", app.config.Env)

	err := srv.ListenAndServe()
	if !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	if err := <-shutdownError; err != nil {
		return err
	}

	app.logger.Info("stopped server", "addr", srv.Addr)

	return nil
}
