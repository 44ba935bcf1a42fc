package repository

import "github.com/Lixing-Zhang/suswaad-cafe/internal/models"

// DefaultMenu returns the café's built-in menu, used when no catalog file is
// configured
func DefaultMenu() []models.Category {
	return []models.Category{
		{
			Name: "breakfast",
			Items: []models.MenuItem{
				{ID: 1, Name: "Idli", Description: "Steamed rice cakes with sambar and chutney", Price: 40, Rating: 4.6, Stock: 20, ImageRef: "images/idli.jpg"},
				{ID: 2, Name: "Masala Dosa", Description: "Crisp dosa with spiced potato filling", Price: 70, Rating: 4.8, Stock: 15, ImageRef: "images/masala-dosa.jpg"},
				{ID: 3, Name: "Poha", Description: "Flattened rice with peanuts and curry leaves", Price: 35, Rating: 4.3, Stock: 12, ImageRef: "images/poha.jpg"},
				{ID: 4, Name: "Upma", Description: "Semolina cooked with vegetables", Price: 35, Rating: 4.1, Stock: 0, ImageRef: "images/upma.jpg"},
			},
		},
		{
			Name: "lunch",
			Items: []models.MenuItem{
				{ID: 5, Name: "Veg Thali", Description: "Rice, dal, two sabzis, roti and curd", Price: 120, Rating: 4.7, Stock: 10, ImageRef: "images/veg-thali.jpg"},
				{ID: 6, Name: "Curd Rice", Description: "Tempered rice with fresh curd", Price: 60, Rating: 4.4, Stock: 8, ImageRef: "images/curd-rice.jpg"},
				{ID: 7, Name: "Rajma Chawal", Description: "Kidney bean curry with steamed rice", Price: 90, Rating: 4.5, Stock: 6, ImageRef: "images/rajma-chawal.jpg"},
			},
		},
		{
			Name: "sandwiches",
			Items: []models.MenuItem{
				{ID: 8, Name: "Veg Grilled Sandwich", Description: "Grilled with vegetables and cheese", Price: 65, Rating: 4.2, Stock: 14, ImageRef: "images/veg-grilled.jpg"},
				{ID: 9, Name: "Paneer Tikka Sandwich", Description: "Tandoori paneer with mint mayo", Price: 85, Rating: 4.6, Stock: 9, ImageRef: "images/paneer-tikka.jpg"},
				{ID: 10, Name: "Bombay Sandwich", Description: "Chutney, potato and beetroot layers", Price: 55, Rating: 4.3, Stock: 11, ImageRef: "images/bombay.jpg"},
			},
		},
		{
			Name: "beverages",
			Items: []models.MenuItem{
				{ID: 11, Name: "Filter Coffee", Description: "South Indian decoction coffee", Price: 30, Rating: 4.9, Stock: 40, ImageRef: "images/filter-coffee.jpg"},
				{ID: 12, Name: "Masala Chai", Description: "Spiced milk tea", Price: 20, Rating: 4.7, Stock: 50, ImageRef: "images/masala-chai.jpg"},
				{ID: 13, Name: "Mango Lassi", Description: "Sweet yogurt drink with mango pulp", Price: 50, Rating: 4.5, Stock: 3, ImageRef: "images/mango-lassi.jpg"},
			},
		},
	}
}
