package cmd

import (
	"context"

	"marketplace/internal/adapters/out/kafka"
	"marketplace/internal/adapters/out/postgres"
	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/application/usecases/queries"
	"marketplace/internal/core/domain/model/access"
	"marketplace/internal/core/domain/model/kernel"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	publisher  *kafka.Publisher
}

func NewCompositionRoot(configs Config, gormDB *gorm.DB) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		publisher:  kafka.NewPublisher(configs.KafkaBrokers, configs.KafkaEventsTopic),
	}
}

// Close releases resources held by outbound adapters.
func (c *CompositionRoot) Close() error {
	return c.publisher.Close()
}

// SeedAdmin ensures the configured administrator holds the Admin role.
// Role assignment is admin-gated, so the first administrator has to be
// planted outside the command path.
func (c *CompositionRoot) SeedAdmin(ctx context.Context, adminID kernel.UUID) error {
	assignment, err := access.NewRoleAssignment(adminID, access.Admin)
	if err != nil {
		return err
	}

	uow := c.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.RoleRepository().Upsert(ctx, assignment); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

func (c *CompositionRoot) CreateListProductCommandHandler() commands.ListProductCommandHandler {
	var f commands.CatalogUoWFactory = FuncCatalogUoWFactory(func() commands.CatalogUoW {
		return c.uowFactory.Create()
	})
	return commands.NewListProductCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateValidateOrderCommandHandler() commands.ValidateOrderCommandHandler {
	var f commands.ValidationUoWFactory = FuncValidationUoWFactory(func() commands.ValidationUoW {
		return c.uowFactory.Create()
	})
	return commands.NewValidateOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateAssignDeliveryCommandHandler() commands.AssignDeliveryCommandHandler {
	var f commands.DeliveryUoWFactory = FuncDeliveryUoWFactory(func() commands.DeliveryUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAssignDeliveryCommandHandler(f)
}

func (c *CompositionRoot) CreateUpdateDeliveryStatusCommandHandler() commands.UpdateDeliveryStatusCommandHandler {
	var f commands.DeliveryUoWFactory = FuncDeliveryUoWFactory(func() commands.DeliveryUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateDeliveryStatusCommandHandler(f)
}

func (c *CompositionRoot) CreateCompleteOrderCommandHandler() commands.CompleteOrderCommandHandler {
	var f commands.DeliveryUoWFactory = FuncDeliveryUoWFactory(func() commands.DeliveryUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCompleteOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateConfirmOrderCompletionCommandHandler() commands.ConfirmOrderCompletionCommandHandler {
	var f commands.DeliveryUoWFactory = FuncDeliveryUoWFactory(func() commands.DeliveryUoW {
		return c.uowFactory.Create()
	})
	return commands.NewConfirmOrderCompletionCommandHandler(f)
}

func (c *CompositionRoot) CreateApproveValidatorCommandHandler() commands.ApproveValidatorCommandHandler {
	var f commands.AccessUoWFactory = FuncAccessUoWFactory(func() commands.AccessUoW {
		return c.uowFactory.Create()
	})
	return commands.NewApproveValidatorCommandHandler(f)
}

func (c *CompositionRoot) CreateAssignRoleCommandHandler() commands.AssignRoleCommandHandler {
	var f commands.AccessUoWFactory = FuncAccessUoWFactory(func() commands.AccessUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAssignRoleCommandHandler(f)
}

func (c *CompositionRoot) CreateRelayEventsCommandHandler() commands.RelayEventsCommandHandler {
	var f commands.OutboxUoWFactory = FuncOutboxUoWFactory(func() commands.OutboxUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRelayEventsCommandHandler(f, c.publisher)
}

func (c *CompositionRoot) CreateGetProductQueryHandler() queries.GetProductQueryHandler {
	return queries.NewGetProductQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetRoleQueryHandler() queries.GetRoleQueryHandler {
	return queries.NewGetRoleQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateIsValidatorQueryHandler() queries.IsValidatorQueryHandler {
	return queries.NewIsValidatorQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetCountsQueryHandler() queries.GetCountsQueryHandler {
	return queries.NewGetCountsQueryHandler(c.gormDB)
}

type FuncCatalogUoWFactory func() commands.CatalogUoW

func (f FuncCatalogUoWFactory) Create() commands.CatalogUoW {
	return f()
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncValidationUoWFactory func() commands.ValidationUoW

func (f FuncValidationUoWFactory) Create() commands.ValidationUoW {
	return f()
}

type FuncDeliveryUoWFactory func() commands.DeliveryUoW

func (f FuncDeliveryUoWFactory) Create() commands.DeliveryUoW {
	return f()
}

type FuncAccessUoWFactory func() commands.AccessUoW

func (f FuncAccessUoWFactory) Create() commands.AccessUoW {
	return f()
}

type FuncOutboxUoWFactory func() commands.OutboxUoW

func (f FuncOutboxUoWFactory) Create() commands.OutboxUoW {
	return f()
}
