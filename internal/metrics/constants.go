package metrics

// ============================================================================
// Metric Names
// ============================================================================

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
)

// Economy metric names
const (
	MetricNameItemsSold        = "items_sold_total"
	MetricNameItemsBought      = "items_bought_total"
	MetricNameItemsEquipped    = "items_equipped_total"
	MetricNameItemsUnequipped  = "items_unequipped_total"
	MetricNameMoneyEarned      = "money_earned_total"
	MetricNameMoneySpent       = "money_spent_total"
	MetricNameRewardsGranted   = "rewards_granted_total"
	MetricNameEconomyFailures  = "economy_failures_total"
	MetricNameCatalogCacheHits = "catalog_cache_hits_total"
	MetricNameCatalogCacheMiss = "catalog_cache_misses_total"
)

// ============================================================================
// Metric Help Text
// ============================================================================

// HTTP metric help text
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"
)

// Economy metric help text
const (
	HelpTextItemsSold        = "Total number of items sold"
	HelpTextItemsBought      = "Total number of items bought"
	HelpTextItemsEquipped    = "Total number of equip operations"
	HelpTextItemsUnequipped  = "Total number of unequip operations"
	HelpTextMoneyEarned      = "Total money earned from selling items"
	HelpTextMoneySpent       = "Total money spent buying items"
	HelpTextRewardsGranted   = "Total number of rewards granted"
	HelpTextEconomyFailures  = "Total number of rejected or failed economy operations"
	HelpTextCatalogCacheHits = "Total number of catalog lookups served from cache"
	HelpTextCatalogCacheMiss = "Total number of catalog lookups that went to the database"
)

// ============================================================================
// Metric Label Names
// ============================================================================

// Common label names used across metrics
const (
	LabelMethod    = "method"
	LabelPath      = "path"
	LabelStatus    = "status"
	LabelItem      = "item"
	LabelOperation = "operation"
	LabelReason    = "reason"
)

// Operation label values for EconomyFailures
const (
	OperationBuy     = "buy"
	OperationSell    = "sell"
	OperationEquip   = "equip"
	OperationUnequip = "unequip"
	OperationReward  = "reward"
)

// PathUnmatched labels requests that did not match a route, so random URLs
// cannot grow the path label set.
const PathUnmatched = "unmatched"

// ============================================================================
// Histogram Buckets
// ============================================================================

// HTTPLatencyBuckets defines the histogram buckets for HTTP request duration
// in seconds, from 1ms to 10s.
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}
