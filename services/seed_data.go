package services

import "shophub/models"

// sampleProducts returns the demo catalog used by Seed.
func sampleProducts() []models.Product {
	return []models.Product{
		{
			Name:        "Wireless Headphones",
			Description: "Premium noise-canceling wireless headphones with 30-hour battery life.",
			Price:       199.99,
			ImageURL:    "https://images.unsplash.com/photo-1505740420928-5e560c06d30e?w=400",
			Category:    "Electronics",
			Stock:       50,
			Featured:    true,
		},
		{
			Name:        "Smart Watch",
			Description: "Advanced fitness tracking smartwatch with heart rate monitor.",
			Price:       299.99,
			ImageURL:    "https://images.unsplash.com/photo-1523275335684-37898b6baf30?w=400",
			Category:    "Electronics",
			Stock:       30,
			Featured:    true,
		},
		{
			Name:        "Coffee Mug",
			Description: "Ceramic coffee mug with ergonomic handle and heat retention.",
			Price:       24.99,
			ImageURL:    "https://images.unsplash.com/photo-1514228742587-6b1558fcf93a?w=400",
			Category:    "Home",
			Stock:       100,
		},
		{
			Name:        "Laptop Backpack",
			Description: "Durable laptop backpack with multiple compartments and USB charging port.",
			Price:       79.99,
			ImageURL:    "https://images.unsplash.com/photo-1553062407-98eeb64c6a62?w=400",
			Category:    "Accessories",
			Stock:       25,
		},
		{
			Name:        "Bluetooth Speaker",
			Description: "Portable waterproof Bluetooth speaker with 360-degree sound.",
			Price:       89.99,
			ImageURL:    "https://images.unsplash.com/photo-1608043152269-423dbba4e7e1?w=400",
			Category:    "Electronics",
			Stock:       40,
			Featured:    true,
		},
		{
			Name:        "Yoga Mat",
			Description: "Non-slip yoga mat with alignment lines and carrying strap.",
			Price:       39.99,
			ImageURL:    "https://images.unsplash.com/photo-1544367567-0f2fcb009e0b?w=400",
			Category:    "Fitness",
			Stock:       60,
		},
		{
			Name:        "Organic Green Tea",
			Description: "Premium quality organic green tea leaves, rich in antioxidants.",
			Price:       15.99,
			ImageURL:    "https://images.unsplash.com/photo-1576092762791-d07c199f14e3?w=400",
			Category:    "Groceries",
			Stock:       120,
		},
		{
			Name:        "Stainless Steel Water Bottle",
			Description: "Insulated stainless steel water bottle, keeps drinks cold for 24 hours.",
			Price:       29.99,
			ImageURL:    "https://images.unsplash.com/photo-1602143407151-7111542de6e8?w=400",
			Category:    "Accessories",
			Stock:       75,
			Featured:    true,
		},
		{
			Name:        `Novel - "The Last Adventure"`,
			Description: "A thrilling fantasy novel about a quest to save a magical kingdom.",
			Price:       12.99,
			ImageURL:    "https://images.unsplash.com/photo-1544947950-fa07a98d237f?w=400",
			Category:    "Books",
			Stock:       90,
		},
		{
			Name:        "Desk Lamp",
			Description: "Modern LED desk lamp with adjustable brightness and color temperature.",
			Price:       45.50,
			ImageURL:    "https://images.unsplash.com/photo-1507436300770-0517003ffeea?w=400",
			Category:    "Home",
			Stock:       35,
			Featured:    true,
		},
		{
			Name:        "Running Shoes",
			Description: "Lightweight and comfortable running shoes for men and women.",
			Price:       120.00,
			ImageURL:    "https://images.unsplash.com/photo-1460353581680-5185aa298a69?w=400",
			Category:    "Fitness",
			Stock:       55,
			Featured:    true,
		},
		{
			Name:        "Smartphone Tripod",
			Description: "Extendable smartphone tripod with remote shutter.",
			Price:       22.00,
			ImageURL:    "https://images.unsplash.com/photo-1575024357670-2b5164f470c3?w=400",
			Category:    "Electronics",
			Stock:       40,
		},
		{
			Name:        "Wall Art Print",
			Description: "Abstract art print for modern home decor, 24x36 inches.",
			Price:       65.00,
			ImageURL:    "https://images.unsplash.com/photo-1503676260728-1c00da094a0b?w=400",
			Category:    "Home",
			Stock:       20,
			Featured:    true,
		},
		{
			Name:        "Leather Wallet",
			Description: "Genuine leather wallet with multiple card slots and RFID blocking.",
			Price:       55.99,
			ImageURL:    "https://images.unsplash.com/photo-1601850494438-7cf07ba9540b?w=400",
			Category:    "Accessories",
			Stock:       60,
		},
		{
			Name:        "Gaming Mouse",
			Description: "Ergonomic gaming mouse with customizable RGB lighting and programmable buttons.",
			Price:       49.99,
			ImageURL:    "https://images.unsplash.com/photo-1615663245857-ac93bb7c39e7?w=400",
			Category:    "Electronics",
			Stock:       30,
			Featured:    true,
		},
		{
			Name:        "Scented Candle",
			Description: "Lavender scented soy wax candle for relaxation and stress relief.",
			Price:       18.00,
			ImageURL:    "https://images.unsplash.com/photo-1600070352486-90919fe80095?w=400",
			Category:    "Home",
			Stock:       80,
		},
		{
			Name:        "Sketchbook",
			Description: "A5 sketchbook with 100 blank pages, perfect for drawing and doodling.",
			Price:       9.99,
			ImageURL:    "https://images.unsplash.com/photo-1513364776144-60967b0f800f?w=400",
			Category:    "Stationery",
			Stock:       150,
		},
		{
			Name:        "Travel Pillow",
			Description: "Memory foam neck pillow for comfortable travel.",
			Price:       25.00,
			ImageURL:    "https://images.unsplash.com/photo-1578852642079-80a88970192b?w=400",
			Category:    "Accessories",
			Stock:       45,
			Featured:    true,
		},
		{
			Name:        "Fitness Tracker",
			Description: "Water-resistant fitness tracker with sleep monitoring and step counter.",
			Price:       75.00,
			ImageURL:    "https://images.unsplash.com/photo-1526627326359-594e71736510?w=400",
			Category:    "Fitness",
			Stock:       50,
		},
		{
			Name:        "Portable Charger",
			Description: "High-capacity portable charger with fast charging technology.",
			Price:       35.99,
			ImageURL:    "https://images.unsplash.com/photo-1588853639417-eaff047f139a?w=400",
			Category:    "Electronics",
			Stock:       70,
			Featured:    true,
		},
	}
}
