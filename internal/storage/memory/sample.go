package memory

import "stayfinder/internal/domain"

func pf(f float64) *float64 { return &f }

const img = "https://images.unsplash.com/"

// SampleHotels is the built-in demo catalog.
func SampleHotels() []domain.HotelDetail {
	return []domain.HotelDetail{
		{
			Listing: domain.Listing{
				ID: 1, Name: "Grand Luxury Resort & Spa", Image: img + "photo-1566073771259-6a8506099945",
				Stars: 5, Price: 299, OriginalPrice: pf(399), Location: "Downtown Dubai",
				Amenities: []string{"Wifi", "Pool", "Parking", "Spa", "Restaurant"},
			},
			Description: "Nestled in the heart of Downtown Dubai, with views of the city skyline and the Burj Khalifa. " +
				"Spacious rooms, a full-service spa, multiple dining options and a rooftop infinity pool.",
			Images: []string{
				img + "photo-1566073771259-6a8506099945",
				img + "photo-1522798514-97ceb8c4f1c8",
				img + "photo-1520250497591-112f2f40a3f4",
				img + "photo-1584132967334-10e028bd69f7",
				img + "photo-1578683010236-d716f9a3f461",
			},
			Rating: pf(9.2),
			Reviews: []domain.Review{
				{ID: 1, User: "John D.", Rating: 5, Date: "2023-04-15", Comment: "Exceptional service and amazing facilities. The rooftop pool is breathtaking."},
				{ID: 2, User: "Sarah M.", Rating: 4, Date: "2023-03-28", Comment: "Beautiful hotel with great amenities. The restaurant was a bit pricey."},
				{ID: 3, User: "Robert K.", Rating: 5, Date: "2023-02-14", Comment: "One of the best hotels I've ever stayed in. We'll definitely be back!"},
			},
			Rooms: []domain.RoomOption{
				{ID: "standard", Name: "Standard Room", PricePerNight: 299},
				{ID: "deluxe", Name: "Deluxe Room", PricePerNight: 399},
				{ID: "suite", Name: "Executive Suite", PricePerNight: 599},
			},
			Coords: &domain.Coords{Lat: 25.276987, Lon: 55.296249},
		},
		{
			Listing: domain.Listing{
				ID: 2, Name: "Seaside Boutique Hotel", Image: img + "photo-1520250497591-112f2f40a3f4",
				Stars: 4, Price: 159, Location: "Miami Beach",
				Amenities: []string{"Wifi", "Pool", "Breakfast"},
			},
			Rooms: []domain.RoomOption{
				{ID: "standard", Name: "Standard Room", PricePerNight: 159},
				{ID: "ocean", Name: "Ocean View Room", PricePerNight: 219},
			},
		},
		{
			Listing: domain.Listing{
				ID: 3, Name: "Urban Loft Suites", Image: img + "photo-1590490360182-c33d57733427",
				Stars: 4, Price: 189, OriginalPrice: pf(220), Location: "New York, Manhattan",
				Amenities: []string{"Wifi", "Gym", "Restaurant"},
			},
			Rooms: []domain.RoomOption{
				{ID: "loft", Name: "Loft Studio", PricePerNight: 189},
				{ID: "suite", Name: "Two-Bedroom Suite", PricePerNight: 289},
			},
		},
		{
			Listing: domain.Listing{
				ID: 4, Name: "Mountain View Lodge", Image: img + "photo-1566073771259-6a8506099945",
				Stars: 3, Price: 129, Location: "Swiss Alps",
				Amenities: []string{"Wifi", "Parking", "Breakfast"},
			},
			Rooms: []domain.RoomOption{{ID: "standard", Name: "Standard Room", PricePerNight: 129}},
		},
		{
			Listing: domain.Listing{
				ID: 5, Name: "City Center Apartments", Image: img + "photo-1576354302919-96748cb8299e",
				Stars: 3, Price: 99, OriginalPrice: pf(135), Location: "Paris, France",
				Amenities: []string{"Wifi", "Kitchen", "Workspace"},
			},
			Rooms: []domain.RoomOption{
				{ID: "studio", Name: "Studio Apartment", PricePerNight: 99},
				{ID: "family", Name: "Family Apartment", PricePerNight: 159},
			},
		},
		{
			Listing: domain.Listing{
				ID: 6, Name: "Palm Beach Resort", Image: img + "photo-1540541338287-41700207dee6",
				Stars: 5, Price: 349, Location: "Maldives",
				Amenities: []string{"Wifi", "Pool", "Beach", "Spa", "Restaurant"},
			},
			Rooms: []domain.RoomOption{
				{ID: "villa", Name: "Beach Villa", PricePerNight: 349},
				{ID: "overwater", Name: "Overwater Villa", PricePerNight: 549},
			},
		},
	}
}

// SampleDestinations are the featured cities on the home page.
func SampleDestinations() []domain.Destination {
	return []domain.Destination{
		{ID: 1, Name: "Dubai", Image: img + "photo-1512453979798-5ea266f8880c"},
		{ID: 2, Name: "Paris", Image: img + "photo-1502602898657-3e91760cbb34"},
		{ID: 3, Name: "New York", Image: img + "photo-1496442226666-8d4d0e62e6e9"},
		{ID: 4, Name: "Tokyo", Image: img + "photo-1540959733332-eab4deabeeaf"},
	}
}
