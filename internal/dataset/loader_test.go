package dataset

import (
	"errors"
	"strings"
	"testing"
)

const validHeader = "neighbourhood,room_type,latitude,longitude,bedrooms,bathrooms,accommodates,number_of_reviews,review_score,has_wifi,has_kitchen,has_free_parking,has_air_conditioning,price"

func TestLoadValidCorpus(t *testing.T) {
	csv := validHeader + "\n" +
		"Capitol Hill,Entire home/apt,38.8866,-76.9962,2,1.5,4,120,4.8,true,true,false,true,155.0\n" +
		"Georgetown,Private room,38.9097,-77.0654,1,1,2,35,4.6,true,false,false,false,89.5\n"

	listings, err := Load(strings.NewReader(csv))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(listings) != 2 {
		t.Fatalf("got %d listings, want 2", len(listings))
	}

	first := listings[0]
	if first.Neighbourhood != "Capitol Hill" || first.Bedrooms != 2 || first.Price != 155.0 {
		t.Errorf("first listing misparsed: %+v", first)
	}
	if !first.HasWifi || first.HasFreeParking {
		t.Errorf("amenity flags misparsed: %+v", first)
	}
	if listings[1].Bathrooms != 1 || listings[1].ReviewScore != 4.6 {
		t.Errorf("second listing misparsed: %+v", listings[1])
	}
}

func TestLoadMissingColumn(t *testing.T) {
	csv := strings.Replace(validHeader, "price", "cost", 1) + "\n" +
		"Capitol Hill,Entire home/apt,38.88,-76.99,2,1,4,10,4.5,1,1,0,0,150\n"

	if _, err := Load(strings.NewReader(csv)); !errors.Is(err, ErrSchemaMismatch) {
		t.Errorf("Load without price column error = %v, want ErrSchemaMismatch", err)
	}
}

func TestLoadBadCellType(t *testing.T) {
	csv := validHeader + "\n" +
		"Capitol Hill,Entire home/apt,38.88,-76.99,two,1,4,10,4.5,1,1,0,0,150\n"

	if _, err := Load(strings.NewReader(csv)); !errors.Is(err, ErrSchemaMismatch) {
		t.Errorf("Load with non-integer bedrooms error = %v, want ErrSchemaMismatch", err)
	}
}

func TestLoadEmptyInput(t *testing.T) {
	if _, err := Load(strings.NewReader("")); !errors.Is(err, ErrSchemaMismatch) {
		t.Errorf("Load of empty input error = %v, want ErrSchemaMismatch", err)
	}
}

func TestLoadHeaderOnly(t *testing.T) {
	listings, err := Load(strings.NewReader(validHeader + "\n"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(listings) != 0 {
		t.Errorf("got %d listings from header-only corpus, want 0", len(listings))
	}
}

func TestLoadExtraColumnsIgnored(t *testing.T) {
	csv := validHeader + ",scrape_id\n" +
		"Shaw,Entire home/apt,38.91,-77.02,3,2,6,80,4.9,1,1,1,1,210,abc123\n"

	listings, err := Load(strings.NewReader(csv))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(listings) != 1 || listings[0].Price != 210 {
		t.Errorf("corpus with extra column misparsed: %+v", listings)
	}
}
