// Package content holds the enumerated kinds shared by the marketing-content
// records (amenities, dining venues, gallery items). The records themselves
// are plain validated rows; they carry no behavior worth an aggregate.
package content

type AmenityCategory string

const (
	AmenityWellness AmenityCategory = "WELLNESS"
	AmenityFitness  AmenityCategory = "FITNESS"
	AmenityLeisure  AmenityCategory = "LEISURE"
	AmenityBusiness AmenityCategory = "BUSINESS"
)

func (c AmenityCategory) IsValid() bool {
	switch c {
	case AmenityWellness, AmenityFitness, AmenityLeisure, AmenityBusiness:
		return true
	default:
		return false
	}
}

type DiningType string

const (
	DiningFineDining DiningType = "FINE_DINING"
	DiningCasual     DiningType = "CASUAL"
	DiningCafe       DiningType = "CAFE"
	DiningBar        DiningType = "BAR"
)

func (t DiningType) IsValid() bool {
	switch t {
	case DiningFineDining, DiningCasual, DiningCafe, DiningBar:
		return true
	default:
		return false
	}
}

type GalleryCategory string

const (
	GalleryExterior GalleryCategory = "EXTERIOR"
	GalleryRoom     GalleryCategory = "ROOM"
	GalleryAmenity  GalleryCategory = "AMENITY"
	GalleryDining   GalleryCategory = "DINING"
)

func (c GalleryCategory) IsValid() bool {
	switch c {
	case GalleryExterior, GalleryRoom, GalleryAmenity, GalleryDining:
		return true
	default:
		return false
	}
}
