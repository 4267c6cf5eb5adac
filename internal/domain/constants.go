package domain

// Character defaults applied on creation
const (
	DefaultStartingMoney = 10000
	DefaultHP            = 500
	DefaultPow           = 100
)

// Stat keys
const (
	StatHP  = "hp"
	StatPow = "pow"
)

// Transaction limits
const (
	MaxTransactionQuantity = 10000
	MaxLineItemsPerRequest = 50
)

// MaxItemPrice bounds catalog prices so price*count sums stay far inside int64
const MaxItemPrice = 1_000_000_000

// Character name limits
const (
	MaxCharacterNameLength = 30
)
