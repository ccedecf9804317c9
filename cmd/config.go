package cmd

// Config carries the runtime settings of the application, loaded from the
// environment by the entrypoint.
type Config struct {
	HTTPPort string

	ShopName      string
	ShopPhone     string
	ShopLatitude  float64
	ShopLongitude float64

	FreeTierSubtotal float64
	FreeTierRadiusKm float64
	NearTierSubtotal float64
	NearTierRadiusKm float64
	BaseDeliveryFee  float64

	RetentionDays         int
	NotificationQueueSize int
}
