package cmd

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	httpin "orderdesk/internal/adapters/in/http"
	"orderdesk/internal/adapters/out/kafka"
	"orderdesk/internal/adapters/out/memory/sessionstore"
	"orderdesk/internal/adapters/out/postgres"
	"orderdesk/internal/adapters/out/postgres/orderrepo"
	"orderdesk/internal/adapters/out/postgres/productrepo"
	"orderdesk/internal/adapters/out/restapi/catalogclient"
	"orderdesk/internal/adapters/out/restapi/ordersclient"
	"orderdesk/internal/core/application/usecases/commands"
	"orderdesk/internal/core/application/usecases/queries"
	"orderdesk/internal/core/domain/services"
	"orderdesk/internal/core/ports"
	"orderdesk/internal/jobs"
	"orderdesk/internal/pkg/metrics"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

type CompositionRoot struct {
	config Config
	logger *slog.Logger

	catalogGateway ports.ProductCatalogGateway
	ordersGateway  ports.OrdersGateway
	sessionStore   *sessionstore.Store
	publisher      ports.EventPublisher
	composer       services.LineItemComposer
	metrics        *metrics.ServerMetrics

	closers []func() error
}

// NewCompositionRoot builds the gateways selected by GATEWAY_BACKEND, the
// session registry and the event publisher.
func NewCompositionRoot(config Config, logger *slog.Logger) (*CompositionRoot, error) {
	root := &CompositionRoot{
		config:   config,
		logger:   logger,
		composer: services.NewLineItemComposer(),
	}

	switch config.GatewayBackend {
	case BackendPostgres:
		db, err := postgres.Open(config.DB.DSN())
		if err != nil {
			return nil, err
		}
		sqlDB, err := db.DB()
		if err != nil {
			return nil, fmt.Errorf("failed to get sql.DB: %w", err)
		}
		root.closers = append(root.closers, sqlDB.Close)

		if err = postgres.Migrate(db); err != nil {
			_ = root.Close()
			return nil, err
		}
		root.catalogGateway = productrepo.NewGormProductRepository(db)
		root.ordersGateway = orderrepo.NewGormOrderRepository(db)
	default:
		root.catalogGateway = catalogclient.New(config.CatalogAPIURL, config.GatewayTimeout, logger)
		root.ordersGateway = ordersclient.New(config.OrdersAPIURL, config.GatewayTimeout)
	}

	store, err := sessionstore.New(config.SessionCapacity)
	if err != nil {
		_ = root.Close()
		return nil, err
	}
	root.sessionStore = store

	root.publisher = kafka.NewPublisher(kafka.NewClient(config.KafkaBrokers), config.KafkaOrderSavedTopic)
	if c, ok := root.publisher.(io.Closer); ok {
		root.closers = append(root.closers, c.Close)
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	root.metrics = metrics.NewServerMetrics(registry)

	return root, nil
}

func (c *CompositionRoot) CreateOpenSessionCommandHandler() commands.OpenSessionCommandHandler {
	return commands.NewOpenSessionCommandHandler(c.catalogGateway, c.ordersGateway, c.sessionStore, c.logger)
}

func (c *CompositionRoot) CreateAddLineItemCommandHandler() commands.AddLineItemCommandHandler {
	return commands.NewAddLineItemCommandHandler(c.sessionStore, c.composer)
}

func (c *CompositionRoot) CreateUpdateLineItemCommandHandler() commands.UpdateLineItemCommandHandler {
	return commands.NewUpdateLineItemCommandHandler(c.sessionStore)
}

func (c *CompositionRoot) CreateRemoveLineItemCommandHandler() commands.RemoveLineItemCommandHandler {
	return commands.NewRemoveLineItemCommandHandler(c.sessionStore)
}

func (c *CompositionRoot) CreateSetOrderNumberCommandHandler() commands.SetOrderNumberCommandHandler {
	return commands.NewSetOrderNumberCommandHandler(c.sessionStore)
}

func (c *CompositionRoot) CreateSetStatusCommandHandler() commands.SetStatusCommandHandler {
	return commands.NewSetStatusCommandHandler(c.sessionStore)
}

func (c *CompositionRoot) CreateSaveOrderCommandHandler() commands.SaveOrderCommandHandler {
	return commands.NewSaveOrderCommandHandler(c.sessionStore, c.ordersGateway, c.publisher, c.logger)
}

func (c *CompositionRoot) CreateDiscardSessionCommandHandler() commands.DiscardSessionCommandHandler {
	return commands.NewDiscardSessionCommandHandler(c.sessionStore)
}

func (c *CompositionRoot) CreateDeleteOrderCommandHandler() commands.DeleteOrderCommandHandler {
	return commands.NewDeleteOrderCommandHandler(c.ordersGateway)
}

func (c *CompositionRoot) CreateExpireSessionsCommandHandler() commands.ExpireSessionsCommandHandler {
	return commands.NewExpireSessionsCommandHandler(c.sessionStore, c.config.SessionTTL, c.logger)
}

func (c *CompositionRoot) CreateGetSessionQueryHandler() queries.GetSessionQueryHandler {
	return queries.NewGetSessionQueryHandler(c.sessionStore)
}

// CreateHTTPServer wires every use case into the inbound HTTP adapter.
func (c *CompositionRoot) CreateHTTPServer() *httpin.Server {
	return httpin.NewServer(httpin.Handlers{
		OpenSession:    c.CreateOpenSessionCommandHandler(),
		AddLineItem:    c.CreateAddLineItemCommandHandler(),
		UpdateLineItem: c.CreateUpdateLineItemCommandHandler(),
		RemoveLineItem: c.CreateRemoveLineItemCommandHandler(),
		SetOrderNumber: c.CreateSetOrderNumberCommandHandler(),
		SetStatus:      c.CreateSetStatusCommandHandler(),
		SaveOrder:      c.CreateSaveOrderCommandHandler(),
		DiscardSession: c.CreateDiscardSessionCommandHandler(),
		DeleteOrder:    c.CreateDeleteOrderCommandHandler(),
		GetSession:     c.CreateGetSessionQueryHandler(),
	}, c.metrics, c.logger)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.CreateExpireSessionsCommandHandler(), c.config.SessionSweepSchedule, c.logger)
}

// Close releases the database pool and the Kafka writer.
func (c *CompositionRoot) Close() error {
	var errs []error
	for i := len(c.closers) - 1; i >= 0; i-- {
		errs = append(errs, c.closers[i]())
	}
	c.closers = nil
	return errors.Join(errs...)
}
