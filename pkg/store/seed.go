package store

import "elitcards/pkg/shop"

// DefaultExchangeRate is the USD to GHS rate written on first start.
const DefaultExchangeRate = 12.5

// SeedProducts returns the initial catalog.
func SeedProducts() []shop.Product {
	return []shop.Product{
		{ID: 1, Title: "Elite Visa Black Card", Number: "XXXX XXXX XXXX 1234", Limit: "Unlimited", Price: 299.99, Image: "images/card1.png"},
		{ID: 2, Title: "Elite Mastercard Gold", Number: "XXXX XXXX XXXX 5678", Limit: "$50,000", Price: 199.99, Image: "images/card2.png"},
		{ID: 3, Title: "Elite Amex Platinum", Number: "XXXX XXXX XXXX 9012", Limit: "$100,000", Price: 249.99, Image: "images/card3.png"},
		{ID: 4, Title: "Elite Discover Diamond", Number: "XXXX XXXX XXXX 3456", Limit: "$75,000", Price: 179.99, Image: "images/card4.png"},
		{ID: 5, Title: "Elite Visa Infinite", Number: "XXXX XXXX XXXX 7890", Limit: "$200,000", Price: 349.99, Image: "images/card5.png"},
		{ID: 6, Title: "Elite Mastercard World", Number: "XXXX XXXX XXXX 2345", Limit: "$150,000", Price: 279.99, Image: "images/card6.png"},
	}
}

// SeedUsers returns the two demo accounts.
func SeedUsers() []shop.User {
	return []shop.User{
		{Name: "John Doe", Email: "john@example.com", Password: "password123", JoinDate: "2023-01-15T12:00:00.000Z"},
		{Name: "Jane Smith", Email: "jane@example.com", Password: "password123", JoinDate: "2023-02-20T14:30:00.000Z"},
	}
}
