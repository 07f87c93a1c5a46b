// Package cellar is the composition root of a personal wine-tasting journal.
//
// A journal is an ordered collection of wine notes. Notes come from a label
// photo or a free-text query analyzed by an AI gateway (Gemini by default),
// or from a blank manual entry. Every change is written through to a
// storage slot: a JSON file in a directory, or a row in SQLite.
//
// The core (package pkg/core) knows nothing about files, databases or HTTP;
// adapters under pkg/adapters implement its ports and this package wires
// them together with functional options.
//
// Usage:
//
//	svc, err := cellar.New(ctx, "./journal",
//		cellar.WithGemini(gemini.Config{APIKey: os.Getenv("GEMINI_API_KEY")}),
//		cellar.WithLogger(logger),
//	)
//
//	note, err := svc.IngestQuery(ctx, "Opus One 2018")
package cellar
