package ledger

import "studioviking-backend/models"

// Seed data mirrors the studio's bootstrap dataset. It is the recovery
// target whenever a collection is absent or unreadable.

func seedClients() []models.Client {
	return []models.Client{
		{ID: "1", Name: "Alice Silva", Phone: "11999998888", Instagram: "@alice.art", Notes: "Alergia a látex", SignedTerms: []string{}},
		{ID: "2", Name: "Bruno Souza", Phone: "11988887777", Instagram: "@bruno_s", SignedTerms: []string{}},
	}
}

func seedServices() []models.ServiceItem {
	return []models.ServiceItem{
		{ID: "s1", Name: "Flash Tattoo Caveira", BasePrice: 300, DurationMin: 120, Professional: models.ProfessionalDavid},
		{ID: "s2", Name: "Tatuagem Fechamento Braço", BasePrice: 1500, DurationMin: 240, Professional: models.ProfessionalDavid},
		{ID: "s3", Name: "Piercing Nariz (Nostril)", BasePrice: 80, DurationMin: 30, Professional: models.ProfessionalJey},
		{ID: "s4", Name: "Piercing Umbigo", BasePrice: 100, DurationMin: 40, Professional: models.ProfessionalJey},
	}
}

func seedProducts() []models.Product {
	return []models.Product{
		{ID: "p1", Name: "Cerveja Heineken", Price: 12, Stock: 24, IsAlcoholic: true, Category: models.CategoryDrink},
		{ID: "p2", Name: "Água s/ Gás", Price: 5, Stock: 50, IsAlcoholic: false, Category: models.CategoryDrink},
		{ID: "p3", Name: "Refrigerante Lata", Price: 6, Stock: 30, IsAlcoholic: false, Category: models.CategoryDrink},
		{ID: "p4", Name: "Hidromel Viking", Price: 25, Stock: 10, IsAlcoholic: true, Category: models.CategoryDrink},
	}
}

// seedAppointments dates its entries today so a fresh install has a
// meaningful agenda to show.
func seedAppointments(today string) []models.Appointment {
	return []models.Appointment{
		{
			ID: "a1", ClientID: "1", ClientName: "Alice Silva",
			ServiceID: "s1", ServiceName: "Flash Tattoo Caveira",
			Date: today, Time: "14:00", Price: 300,
			Professional: models.ProfessionalDavid, Status: models.StatusScheduled,
		},
		{
			ID: "a2", ClientID: "2", ClientName: "Bruno Souza",
			ServiceID: "s3", ServiceName: "Piercing Nariz",
			Date: today, Time: "16:00", Price: 80,
			Professional: models.ProfessionalJey, Status: models.StatusConfirmed,
		},
	}
}

func seedSales() []models.Sale {
	return []models.Sale{}
}
