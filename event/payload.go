package event

// CreepPayload describes a creep at the time of the event
type CreepPayload struct {
	Label string
	X, Y  float64
}

// ShotPayload describes one resolved tower shot
type ShotPayload struct {
	Tower   rune
	FromX   float64
	FromY   float64
	ToX     float64
	ToY     float64
	Targets int // Creeps damaged, primary included
	Kills   int
}

// TowerPayload identifies a tower by type code and cell
type TowerPayload struct {
	Code     rune
	Row, Col int
}

// WavePayload is the wave state after the event
type WavePayload struct {
	Round     int
	WavesLeft int
	Lives     int
	Spawned   int
}

// PurchaseKind distinguishes spawner transactions
type PurchaseKind int

const (
	PurchaseBuy PurchaseKind = iota
	PurchaseUpgrade
	PurchaseSell
)

// PurchasePayload describes a spawner transaction
type PurchasePayload struct {
	Kind    PurchaseKind
	Spawner int
	Title   string
	Amount  int // Cost, or refund for a sale
}
