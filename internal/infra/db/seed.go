package db

import (
	"app/internal/domain/model"

	"gorm.io/gorm"
)

// Seed は空のときだけサンプルデータを入れる。二回目以降は何もしない。
func Seed(gormDB *gorm.DB) error {
	var categoryCount int64
	if err := gormDB.Model(&model.Category{}).Count(&categoryCount).Error; err != nil {
		return err
	}

	if categoryCount == 0 {
		categories := []model.Category{
			{Name: "T-shirts & Tops", Description: "Casual upper wear"},
			{Name: "Shirts", Description: "Formal and casual shirts"},
			{Name: "Jackets & Coats", Description: "Outerwear for every season"},
			{Name: "Pants & Jeans", Description: "Lower wear"},
			{Name: "Dresses", Description: "Women's wear"},
			{Name: "Accessories", Description: "Finishing touches"},
		}
		if err := gormDB.Create(&categories).Error; err != nil {
			return err
		}
	}

	var productCount int64
	if err := gormDB.Model(&model.Product{}).Count(&productCount).Error; err != nil {
		return err
	}
	if productCount > 0 {
		return nil
	}

	//カテゴリ名 -> ID
	var categories []model.Category
	if err := gormDB.Find(&categories).Error; err != nil {
		return err
	}
	byName := make(map[string]*int64, len(categories))
	for i := range categories {
		byName[categories[i].Name] = &categories[i].ID
	}

	products := []model.Product{
		{Title: "Classic Tee", Description: "Cotton t-shirt, assorted colors.", Price: 19.99, ImageURL: "https://picsum.photos/seed/t1/600/400", CategoryID: byName["T-shirts & Tops"], Stock: 30},
		{Title: "Formal Shirt", Description: "Elegant shirt for the office.", Price: 39.99, ImageURL: "https://picsum.photos/seed/t2/600/400", CategoryID: byName["Shirts"], Stock: 25},
		{Title: "Cozy Jacket", Description: "Warm jacket for cold weather.", Price: 89.99, ImageURL: "https://picsum.photos/seed/t3/600/400", CategoryID: byName["Jackets & Coats"], Stock: 15},
		{Title: "Slim Pants", Description: "Stylish slim-fit pants.", Price: 49.99, ImageURL: "https://picsum.photos/seed/t4/600/400", CategoryID: byName["Pants & Jeans"], Stock: 40},
		{Title: "Summer Dress", Description: "Light dress for summer.", Price: 59.99, ImageURL: "https://picsum.photos/seed/t5/600/400", CategoryID: byName["Dresses"], Stock: 20},
		{Title: "Sport Cap", Description: "Cap for sport and walks.", Price: 14.99, ImageURL: "https://picsum.photos/seed/t6/600/400", CategoryID: byName["Accessories"], Stock: 50},
	}
	return gormDB.Create(&products).Error
}
