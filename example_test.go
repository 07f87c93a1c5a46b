package cellar_test

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/aretw0/cellar"
	"github.com/aretw0/cellar/pkg/core"
)

type labelReader struct{}

func (labelReader) AnalyzeImage(ctx context.Context, img core.Image) (core.WineAnalysis, error) {
	return core.WineAnalysis{Name: "Chateau X", Region: "Bordeaux"}, nil
}

func (labelReader) Research(ctx context.Context, query string) (core.WineAnalysis, []core.SearchSource, error) {
	return core.WineAnalysis{Name: query}, []core.SearchSource{{Title: "Winery", URI: "https://example.com"}}, nil
}

// Example_basic opens a journal, ingests a label photo and reads it back.
func Example_basic() {
	tmpDir, err := os.MkdirTemp("", "cellar-example-*")
	if err != nil {
		log.Fatal(err)
	}
	defer os.RemoveAll(tmpDir)

	ctx := context.Background()
	svc, err := cellar.New(ctx, tmpDir, cellar.WithGateway(labelReader{}))
	if err != nil {
		log.Fatal(err)
	}

	note, err := svc.IngestImage(ctx, core.Image{Data: []byte("jpeg"), MIMEType: "image/jpeg"})
	if err != nil {
		log.Fatal(err)
	}

	got, err := svc.Get(note.ID)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(got.Name, "-", got.Region, "-", got.Varietal, "-", got.Rating)
	// Output:
	// Chateau X - Bordeaux - Unknown Varietal - 5
}

// Example_edit changes a note through a draft and commits it.
func Example_edit() {
	tmpDir, err := os.MkdirTemp("", "cellar-example-*")
	if err != nil {
		log.Fatal(err)
	}
	defer os.RemoveAll(tmpDir)

	ctx := context.Background()
	svc, err := cellar.New(ctx, tmpDir, cellar.WithGateway(labelReader{}))
	if err != nil {
		log.Fatal(err)
	}

	note, err := svc.IngestQuery(ctx, "Opus One 2018")
	if err != nil {
		log.Fatal(err)
	}

	draft, err := svc.Edit(note.ID)
	if err != nil {
		log.Fatal(err)
	}
	_ = draft.SetRating(4)
	body, _ := draft.AdjustCharacteristic(core.AxisBody, +3)
	if err := svc.Commit(ctx, draft); err != nil {
		log.Fatal(err)
	}

	got, _ := svc.Get(note.ID)
	fmt.Println(got.Name, got.Rating, body, len(got.SearchSources))
	// Output:
	// Opus One 2018 4 5 1
}
