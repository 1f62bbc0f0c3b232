package cmd

import (
	"parceltrack/internal/adapters/out/auth"
	"parceltrack/internal/adapters/out/postgres"
	"parceltrack/internal/adapters/out/stripegw"
	"parceltrack/internal/core/application/usecases/commands"
	"parceltrack/internal/core/application/usecases/queries"
	"parceltrack/internal/core/ports"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	configs    Config
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
}

func NewCompositionRoot(configs Config, gormDB *gorm.DB) CompositionRoot {
	return CompositionRoot{
		configs:    configs,
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
	}
}

func (c *CompositionRoot) CreateCreateParcelCommandHandler() commands.CreateParcelCommandHandler {
	var f commands.ParcelUoWFactory = FuncParcelUoWFactory(func() commands.ParcelUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateParcelCommandHandler(f)
}

func (c *CompositionRoot) CreateDeleteParcelCommandHandler() commands.DeleteParcelCommandHandler {
	var f commands.ParcelUoWFactory = FuncParcelUoWFactory(func() commands.ParcelUoW {
		return c.uowFactory.Create()
	})
	return commands.NewDeleteParcelCommandHandler(f)
}

func (c *CompositionRoot) CreateAssignRiderCommandHandler() commands.AssignRiderCommandHandler {
	var f commands.AssignmentUoWFactory = FuncAssignmentUoWFactory(func() commands.AssignmentUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAssignRiderCommandHandler(f)
}

func (c *CompositionRoot) CreateUpdateDeliveryStatusCommandHandler() commands.UpdateDeliveryStatusCommandHandler {
	var f commands.DeliveryUoWFactory = FuncDeliveryUoWFactory(func() commands.DeliveryUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateDeliveryStatusCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateRiderCommandHandler() commands.CreateRiderCommandHandler {
	var f commands.RiderUoWFactory = FuncRiderUoWFactory(func() commands.RiderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateRiderCommandHandler(f)
}

func (c *CompositionRoot) CreateUpdateRiderStatusCommandHandler() commands.UpdateRiderStatusCommandHandler {
	var f commands.RiderUoWFactory = FuncRiderUoWFactory(func() commands.RiderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateRiderStatusCommandHandler(f)
}

func (c *CompositionRoot) CreateCreditEarningsCommandHandler() commands.CreditEarningsCommandHandler {
	var f commands.WalletUoWFactory = FuncWalletUoWFactory(func() commands.WalletUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreditEarningsCommandHandler(f)
}

func (c *CompositionRoot) CreateRequestCashOutCommandHandler() commands.RequestCashOutCommandHandler {
	var f commands.CashOutUoWFactory = FuncCashOutUoWFactory(func() commands.CashOutUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRequestCashOutCommandHandler(f)
}

func (c *CompositionRoot) CreateProcessWithdrawalsCommandHandler() commands.ProcessWithdrawalsCommandHandler {
	var f commands.WalletUoWFactory = FuncWalletUoWFactory(func() commands.WalletUoW {
		return c.uowFactory.Create()
	})
	return commands.NewProcessWithdrawalsCommandHandler(f)
}

func (c *CompositionRoot) CreateRecordPaymentCommandHandler() commands.RecordPaymentCommandHandler {
	var f commands.PaymentUoWFactory = FuncPaymentUoWFactory(func() commands.PaymentUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRecordPaymentCommandHandler(f)
}

func (c *CompositionRoot) CreateGetParcelsBySenderQueryHandler() queries.GetParcelsBySenderQueryHandler {
	return queries.NewGetParcelsBySenderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAdminParcelsQueryHandler() queries.GetAdminParcelsQueryHandler {
	return queries.NewGetAdminParcelsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetParcelQueryHandler() queries.GetParcelQueryHandler {
	return queries.NewGetParcelQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetRiderDeliveriesQueryHandler() queries.GetRiderDeliveriesQueryHandler {
	return queries.NewGetRiderDeliveriesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetRidersByStatusQueryHandler() queries.GetRidersByStatusQueryHandler {
	return queries.NewGetRidersByStatusQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetTrackingHistoryQueryHandler() queries.GetTrackingHistoryQueryHandler {
	return queries.NewGetTrackingHistoryQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetWalletBalanceQueryHandler() queries.GetWalletBalanceQueryHandler {
	var f queries.WalletUoWFactory = FuncQueryWalletUoWFactory(func() queries.WalletUoW {
		return c.uowFactory.Create()
	})
	return queries.NewGetWalletBalanceQueryHandler(f)
}

func (c *CompositionRoot) CreateIdentityVerifier() (ports.IdentityVerifier, error) {
	return auth.NewJWTVerifier(c.configs.JWTSecret)
}

func (c *CompositionRoot) CreatePaymentGateway() (ports.PaymentGateway, error) {
	return stripegw.NewGateway(c.configs.StripeSecretKey)
}

type FuncParcelUoWFactory func() commands.ParcelUoW

func (f FuncParcelUoWFactory) Create() commands.ParcelUoW {
	return f()
}

type FuncRiderUoWFactory func() commands.RiderUoW

func (f FuncRiderUoWFactory) Create() commands.RiderUoW {
	return f()
}

type FuncWalletUoWFactory func() commands.WalletUoW

func (f FuncWalletUoWFactory) Create() commands.WalletUoW {
	return f()
}

type FuncCashOutUoWFactory func() commands.CashOutUoW

func (f FuncCashOutUoWFactory) Create() commands.CashOutUoW {
	return f()
}

type FuncAssignmentUoWFactory func() commands.AssignmentUoW

func (f FuncAssignmentUoWFactory) Create() commands.AssignmentUoW {
	return f()
}

type FuncDeliveryUoWFactory func() commands.DeliveryUoW

func (f FuncDeliveryUoWFactory) Create() commands.DeliveryUoW {
	return f()
}

type FuncPaymentUoWFactory func() commands.PaymentUoW

func (f FuncPaymentUoWFactory) Create() commands.PaymentUoW {
	return f()
}

type FuncQueryWalletUoWFactory func() queries.WalletUoW

func (f FuncQueryWalletUoWFactory) Create() queries.WalletUoW {
	return f()
}
