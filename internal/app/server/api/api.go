//POST /api/auth/signup        # Регистрация (публичный)
//POST /api/auth/login         # Логин (публичный)
//GET  /api/auth/verify        # Проверка токена (auth)
//POST /api/auth/logout        # Выход (auth)
//GET  /api/notes              # Список заметок (auth)
//POST /api/notes              # Создать заметку (auth)
//PUT  /api/notes/{id}         # Обновить заметку (auth)
//DELETE /api/notes/{id}       # Удалить заметку (auth)
//GET  /api/search?q=          # Полнотекстовый поиск (auth)
//GET  /api/search/partial?q=  # Поиск по префиксу (auth)
//POST /api/media/upload/{id}  # Загрузка файла (auth, multipart)
//GET  /api/media/{id}         # Вложения заметки (auth)
//GET  /api/media/{id}/url     # Подписанная ссылка (auth)
//DELETE /api/media/{id}       # Удалить вложение (auth)
//POST /api/payments/create    # Создать платёжную ссылку (auth)
//POST /api/payments/webhook   # Webhook платёжного провайдера (подпись)

package api

import (
	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"golang.org/x/exp/slog"

	"notekeeper/internal/app/server/config"

	healthAPI "notekeeper/internal/app/server/api/http/health"
	mediaAPI "notekeeper/internal/app/server/api/http/media"
	"notekeeper/internal/app/server/api/http/middleware"
	"notekeeper/internal/app/server/api/http/middleware/auth"
	"notekeeper/internal/app/server/api/http/middleware/logger"
	noteAPI "notekeeper/internal/app/server/api/http/note"
	paymentAPI "notekeeper/internal/app/server/api/http/payment"
	userAPI "notekeeper/internal/app/server/api/http/user"

	"notekeeper/internal/domain/media"
	"notekeeper/internal/domain/note"
	"notekeeper/internal/domain/payment"
	"notekeeper/internal/domain/session"
	"notekeeper/internal/domain/user"
	"notekeeper/internal/infrastructure/storage/postgres"
)

type Handlers struct {
	Health  *healthAPI.Handler
	User    *userAPI.Handler
	Note    *noteAPI.Handler
	Media   *mediaAPI.Handler
	Payment *paymentAPI.Handler
}

// errorBody is the single error shape of the API: {"error": "..."}.
type errorBody struct {
	status  int
	Message string `json:"error"`
}

func (e *errorBody) Error() string { return e.Message }

func (e *errorBody) GetStatus() int { return e.status }

func (e *errorBody) ContentType(string) string { return "application/json" }

// New создает *chi.Mux с ВСЕМИ операциями через huma.Register
func New(
	cfg *config.Config,
	storage *postgres.Storage,
	objects media.ObjectStore,
	sessionCache session.Cache,
	provider payment.Provider,
	log *slog.Logger,
) *chi.Mux {
	mux := chi.NewMux()

	humaConfig := huma.DefaultConfig("Notekeeper API", "1.0.0")
	humaConfig.Components.SecuritySchemes = map[string]*huma.SecurityScheme{
		"bearer": {Type: "http", Scheme: "bearer"},
	}

	huma.NewError = func(status int, msg string, _ ...error) huma.StatusError {
		return &errorBody{status: status, Message: msg}
	}

	API := humachi.New(mux, humaConfig)

	h := handlers(cfg, storage, objects, sessionCache, provider, log)
	h.Health.SetupRoutes(API)
	h.User.SetupRoutes(API)
	h.Note.SetupRoutes(API)
	h.Media.SetupRoutes(API)
	h.Payment.SetupRoutes(API)

	return mux
}

func handlers(
	cfg *config.Config,
	storage *postgres.Storage,
	objects media.ObjectStore,
	sessionCache session.Cache,
	provider payment.Provider,
	log *slog.Logger,
) *Handlers {
	sessionRepo := postgres.NewSessionRepository(storage.Pool(), log)
	sessionService := session.NewService(sessionRepo, sessionCache, log)
	authMW := auth.New(sessionService, log).Middleware()
	loggerMW := logger.New(log).Middleware()
	middlewares := middleware.NewContainer()

	middlewares.Add(loggerMW)
	healthHandler := healthAPI.NewHandler(log, middlewares.GetAllAndClear())

	userRepo := postgres.NewUserRepository(storage.Pool(), log)
	userService := user.NewService(userRepo, user.NewValidator(), cfg.Signup.RequireConfirmation, log)
	middlewares.Add(loggerMW)
	publicMW := middlewares.GetAllAndClear()
	middlewares.Add(loggerMW)
	middlewares.Add(authMW)
	userHandler := userAPI.NewHandler(userService, sessionService, log, publicMW, middlewares.GetAllAndClear())

	mediaRepo := postgres.NewMediaRepository(storage.Pool(), log)
	mediaService := media.NewService(mediaRepo, objects, log)

	noteRepo := postgres.NewNoteRepository(storage.Pool(), log)
	noteService := note.NewService(noteRepo, mediaService, log)
	middlewares.Add(loggerMW)
	middlewares.Add(authMW)
	noteHandler := noteAPI.NewHandler(noteService, log, middlewares.GetAllAndClear())

	middlewares.Add(loggerMW)
	middlewares.Add(authMW)
	mediaHandler := mediaAPI.NewHandler(mediaService, log, middlewares.GetAllAndClear())

	paymentRepo := postgres.NewPaymentRepository(storage.Pool(), log)
	paymentService := payment.NewService(paymentRepo, provider, cfg.Dodo.WebhookSecret, log)
	middlewares.Add(loggerMW)
	middlewares.Add(authMW)
	paymentWithAuth := middlewares.GetAllAndClear()
	middlewares.Add(loggerMW)
	paymentHandler := paymentAPI.NewHandler(paymentService, userService, log, paymentWithAuth, middlewares.GetAllAndClear())

	return &Handlers{
		Health:  healthHandler,
		User:    userHandler,
		Note:    noteHandler,
		Media:   mediaHandler,
		Payment: paymentHandler,
	}
}
