// Package metrics records validation activity as Prometheus metrics.
//
// A Collector implements schema.Observer, so it can be passed to a registry
// with schema.WithObserver and sees every record validation:
//
//	collector := metrics.NewCollector()
//	reg, err := catalog.NewRegistry(schema.WithObserver(collector))
//
// Metrics:
//   - hydroini_validation_records_total: validated records by record type and outcome
//   - hydroini_validation_violations_total: violations by record type
//   - hydroini_validation_duration_seconds: validation duration by record type
//   - hydroini_validation_files_total: processed files by outcome
//
// Batch runs without a scrape endpoint can dump the registry in the text
// exposition format with WriteTextfile, for the node exporter textfile
// collector.
package metrics
