package router

import (
	"github.com/dilvertex/pipesite-backend/internal/application"
	"github.com/dilvertex/pipesite-backend/internal/container"
	"github.com/dilvertex/pipesite-backend/internal/domain/entity"
	"github.com/dilvertex/pipesite-backend/internal/domain/repository"
	pginfra "github.com/dilvertex/pipesite-backend/internal/infrastructure/postgres"
	handlers "github.com/dilvertex/pipesite-backend/internal/interface/http"
	"github.com/dilvertex/pipesite-backend/internal/router/modules"
)

func newSyncer[T any, PT interface {
	*T
	application.FileBacked
	repository.Document
}](table, folder, fileField string) *application.FileSyncer[T, PT] {
	repo := pginfra.NewCollection[T, PT](container.GetPGPool(), table)
	return application.NewFileSyncer[T, PT](repo, container.GetFileStore(), folder, fileField, container.GetLogger())
}

// InitModules builds every feature module from the container singletons and
// registers it. Called once at startup.
func InitModules(r *Registry) {
	pool := container.GetPGPool()
	logger := container.GetLogger()
	cfg := container.GetConfig()
	jwt := container.GetJWT()
	audit := pginfra.NewAuditLogger(pool)

	employeeSync := newSyncer[entity.Employee, *entity.Employee]("employees", "employees", "file")
	newsSync := newSyncer[entity.News, *entity.News]("news", "news", "thumbnail")
	fittingSync := newSyncer[entity.Fitting, *entity.Fitting]("fittings", "fittings", "file")
	resourceSync := newSyncer[entity.Resource, *entity.Resource]("resources", "resources", "file")

	indexer := application.NewNewsIndexer(container.GetES(), cfg.ESNewsIndex, logger)

	careerRepo := pginfra.NewCollection[entity.Career, *entity.Career](pool, "careers")
	dealerRepo := pginfra.NewCollection[entity.Dealer, *entity.Dealer](pool, "dealers")
	videoRepo := pginfra.NewCollection[entity.Video, *entity.Video](pool, "videos")
	messageRepo := pginfra.NewCollection[entity.Message, *entity.Message](pool, "messages")
	quoteRepo := pginfra.NewCollection[entity.PipeQuote, *entity.PipeQuote](pool, "pipe_quotes")

	adminSvc := application.NewAdminService(pginfra.NewAdminRepository(pool), jwt, cfg.BcryptCost, logger)

	// A typed nil publisher must stay a nil interface.
	var pub application.EmailPublisher
	if rp := container.GetRabbitPub(); rp != nil {
		pub = rp
	}
	userSvc := application.NewUserService(
		pginfra.NewUserRepository(pool),
		pginfra.NewVerificationTokenRepository(pool),
		jwt,
		pub,
		cfg.BcryptCost,
		cfg.VerifyEmailURL,
		cfg.MailSendEnabled,
		logger,
	)

	r.Add(modules.NewMediaModule(
		handlers.NewEmployeeHandler(employeeSync, logger),
		handlers.NewNewsHandler(newsSync, indexer, logger),
		handlers.NewFittingHandler(fittingSync, logger),
		handlers.NewResourceHandler(resourceSync, logger),
		jwt,
	))
	r.Add(modules.NewCatalogModule(
		handlers.NewCareerHandler(careerRepo, logger),
		handlers.NewDealerHandler(dealerRepo, logger),
		handlers.NewVideoHandler(videoRepo, logger),
		jwt,
	))
	r.Add(modules.NewInboxModule(
		handlers.NewMessageHandler(messageRepo, logger),
		handlers.NewQuoteHandler(quoteRepo, logger),
		jwt,
	))
	r.Add(modules.NewAuthModule(handlers.NewAdminAuthHandler(adminSvc, audit, logger)))
	r.Add(modules.NewUserModule(handlers.NewUserAuthHandler(userSvc, audit, logger)))
}
