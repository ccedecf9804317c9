package cmd

import (
	"context"
	"log/slog"
	"os"
	"time"

	"kirana/internal/adapters/in/http"
	"kirana/internal/adapters/out/memqueue"
	"kirana/internal/adapters/out/memstore/orderrepo"
	"kirana/internal/adapters/out/memstore/pricerepo"
	"kirana/internal/adapters/out/whatsapp"
	"kirana/internal/core/application/usecases/commands"
	"kirana/internal/core/application/usecases/queries"
	"kirana/internal/core/domain/model/kernel"
	"kirana/internal/core/domain/model/pricelist"
	"kirana/internal/core/domain/model/pricing"
	"kirana/internal/jobs"

	"github.com/labstack/gommon/log"
	"github.com/shopspring/decimal"
)

// seedItem is one pre-listed catalogue entry.
type seedItem struct {
	name     string
	price    int64
	category string
}

// defaultCatalogue is the stock the shop opens with. The admin reshapes it
// through the price-list endpoints afterwards.
var defaultCatalogue = []seedItem{
	{"Rice (1kg)", 45, "Grains"},
	{"Wheat Flour (1kg)", 35, "Grains"},
	{"Sugar (1kg)", 42, "Essentials"},
	{"Cooking Oil (1L)", 120, "Essentials"},
	{"Milk (1L)", 60, "Dairy"},
	{"Bread", 25, "Bakery"},
	{"Eggs (12)", 80, "Dairy"},
	{"Tomatoes (1kg)", 40, "Vegetables"},
	{"Onions (1kg)", 30, "Vegetables"},
	{"Potatoes (1kg)", 35, "Vegetables"},
}

// CompositionRoot wires adapters, handlers and jobs from configuration.
type CompositionRoot struct {
	config Config
	logger *slog.Logger

	orders    *orderrepo.Repository
	priceList *pricerepo.Repository
	queue     *memqueue.Queue

	tariff       pricing.Tariff
	shopLocation kernel.GeoPoint
}

// NewCompositionRoot builds the object graph and seeds the price list with
// the default catalogue.
func NewCompositionRoot(config Config) CompositionRoot {
	root := CompositionRoot{
		config:       config,
		logger:       slog.New(slog.NewJSONHandler(os.Stdout, nil)),
		orders:       orderrepo.NewRepository(),
		priceList:    pricerepo.NewRepository(),
		queue:        memqueue.New(config.NotificationQueueSize),
		tariff:       tariffFromConfig(config),
		shopLocation: kernel.NewGeoPoint(config.ShopLatitude, config.ShopLongitude),
	}

	root.seedPriceList()

	return root
}

func tariffFromConfig(config Config) pricing.Tariff {
	return pricing.Tariff{
		FreeTierSubtotal: decimal.NewFromFloat(config.FreeTierSubtotal),
		FreeTierRadiusKm: config.FreeTierRadiusKm,
		NearTierSubtotal: decimal.NewFromFloat(config.NearTierSubtotal),
		NearTierRadiusKm: config.NearTierRadiusKm,
		BaseFee:          decimal.NewFromFloat(config.BaseDeliveryFee),
	}
}

func (c *CompositionRoot) seedPriceList() {
	ctx := context.Background()

	for _, seed := range defaultCatalogue {
		id, err := c.priceList.NextID(ctx)
		if err != nil {
			log.Fatalf("Failed to seed price list: %v", err)
		}

		item, err := pricelist.NewItem(id, seed.name, decimal.NewFromInt(seed.price), seed.category)
		if err != nil {
			log.Fatalf("Failed to seed price list: %v", err)
		}

		if err = c.priceList.Add(ctx, item); err != nil {
			log.Fatalf("Failed to seed price list: %v", err)
		}
	}
}

func (c *CompositionRoot) CreateSubmitOrderCommandHandler() commands.SubmitOrderCommandHandler {
	return commands.NewSubmitOrderCommandHandler(
		c.orders, c.priceList, c.queue, c.tariff, c.shopLocation, c.logger,
	)
}

func (c *CompositionRoot) CreateChangeOrderStatusCommandHandler() commands.ChangeOrderStatusCommandHandler {
	return commands.NewChangeOrderStatusCommandHandler(c.orders)
}

func (c *CompositionRoot) CreateRemoveOrderCommandHandler() commands.RemoveOrderCommandHandler {
	return commands.NewRemoveOrderCommandHandler(c.orders)
}

func (c *CompositionRoot) CreateAddPriceItemCommandHandler() commands.AddPriceItemCommandHandler {
	return commands.NewAddPriceItemCommandHandler(c.priceList)
}

func (c *CompositionRoot) CreateUpdatePriceItemCommandHandler() commands.UpdatePriceItemCommandHandler {
	return commands.NewUpdatePriceItemCommandHandler(c.priceList)
}

func (c *CompositionRoot) CreateRemovePriceItemCommandHandler() commands.RemovePriceItemCommandHandler {
	return commands.NewRemovePriceItemCommandHandler(c.priceList)
}

func (c *CompositionRoot) CreatePurgeExpiredOrdersCommandHandler() commands.PurgeExpiredOrdersCommandHandler {
	return commands.NewPurgeExpiredOrdersCommandHandler(c.orders)
}

func (c *CompositionRoot) CreateGetAllOrdersQueryHandler() queries.GetAllOrdersQueryHandler {
	return queries.NewGetAllOrdersQueryHandler(c.orders)
}

func (c *CompositionRoot) CreateGetPriceListQueryHandler() queries.GetPriceListQueryHandler {
	return queries.NewGetPriceListQueryHandler(c.priceList)
}

// CreateHTTPServer assembles the HTTP server with all handlers.
func (c *CompositionRoot) CreateHTTPServer() *http.Server {
	return http.NewServer(
		c.CreateSubmitOrderCommandHandler(),
		c.CreateChangeOrderStatusCommandHandler(),
		c.CreateRemoveOrderCommandHandler(),
		c.CreateAddPriceItemCommandHandler(),
		c.CreateUpdatePriceItemCommandHandler(),
		c.CreateRemovePriceItemCommandHandler(),
		c.CreateGetAllOrdersQueryHandler(),
		c.CreateGetPriceListQueryHandler(),
	)
}

// CreateJobManager assembles the background jobs: the notification consumer
// and the hourly retention purge.
func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	renderer := whatsapp.NewRenderer(c.config.ShopName, c.config.ShopPhone)
	notifier := whatsapp.NewNotifier(renderer, c.logger)
	retention := time.Duration(c.config.RetentionDays) * 24 * time.Hour

	return jobs.NewJobManager(
		c.queue,
		notifier,
		c.CreatePurgeExpiredOrdersCommandHandler(),
		retention,
		c.logger,
	)
}
