package worker

// Log messages for the worker pool
const (
	LogMsgWorkerJobFailed = "Worker job failed"
	LogMsgJobDropped      = "Worker queue full, job dropped"
)

// Log messages for the catalog sync job
const (
	LogMsgCatalogResyncFailed = "Periodic catalog sync failed"
	LogMsgCatalogReloaded     = "Catalog changed, lookup cache invalidated"
)

// DefaultJobTimeout bounds a single job run
const DefaultJobTimeout = 30 // seconds

// Test pool configuration values used in pool_test.go
const (
	TestWorkerCount           = 2
	TestQueueSize             = 10
	TestExpectedJobCount      = 2
	TestWorkerProcessWaitTime = 100 // milliseconds
)
