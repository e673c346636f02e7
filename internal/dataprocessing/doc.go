// Package dataprocessing loads and cleans the e-commerce furniture
// dataset. It covers the ingestion half of the analysis pipeline:
//
// 1. Loader: reads the source CSV into a Dataset of raw text cells
// 2. Cleaner: imputes missing tags and parses currency-formatted numbers
// 3. Validator: reports remaining nulls and inferred column types
//
// Basic usage:
//
//	ds, err := dataprocessing.LoadCSV("data/furniture.csv")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	cleaner := dataprocessing.NewCleaner(logger)
//	if err := cleaner.Clean(ds); err != nil {
//	    log.Fatal(err)
//	}
//	diags := dataprocessing.Validate(ds)
//
// The cleaner mutates the dataset in place and is idempotent: running
// it again over already-cleaned records changes nothing.
package dataprocessing
