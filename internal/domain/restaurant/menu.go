package restaurant

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Menu generation is mock data: no upstream menu API exists, so the detail
// and menu endpoints synthesize plausible menus keyed off cuisine.

var defaultMenuCategories = []string{"Appetizers", "Main Courses", "Desserts", "Beverages"}

// cuisineMenuCategories maps a cuisine keyword to its category set. Lookup
// is by case-insensitive substring so "Italian", "italian restaurant" and
// "Northern Italian" all match.
var cuisineMenuCategories = []struct {
	keyword    string
	categories []string
}{
	{"italian", []string{"Antipasti", "Pasta", "Pizza", "Desserts"}},
	{"pizza", []string{"Antipasti", "Pasta", "Pizza", "Desserts"}},
	{"japanese", []string{"Sushi", "Ramen", "Tempura", "Desserts"}},
	{"sushi", []string{"Sushi", "Ramen", "Tempura", "Desserts"}},
	{"mexican", []string{"Tacos", "Burritos", "Enchiladas", "Desserts"}},
	{"chinese", []string{"Dim Sum", "Noodles", "Rice Dishes", "Soups"}},
	{"indian", []string{"Curry", "Tandoor", "Biryani", "Bread"}},
	{"thai", []string{"Curries", "Noodles", "Stir Fry", "Soups"}},
	{"american", []string{"Burgers", "Sandwiches", "Grill", "Sides"}},
	{"korean", []string{"BBQ", "Stews", "Rice Bowls", "Banchan"}},
	{"mediterranean", []string{"Mezze", "Grill", "Seafood", "Sides"}},
}

var dishNamesByCategory = map[string][]string{
	"Antipasti":    {"Bruschetta", "Caprese Salad", "Arancini", "Prosciutto e Melone"},
	"Pasta":        {"Spaghetti Carbonara", "Fettuccine Alfredo", "Lasagna", "Penne Arrabbiata", "Ravioli"},
	"Pizza":        {"Margherita", "Quattro Formaggi", "Pepperoni", "Prosciutto", "Diavola"},
	"Sushi":        {"California Roll", "Spicy Tuna Roll", "Salmon Nigiri", "Dragon Roll"},
	"Ramen":        {"Tonkotsu Ramen", "Shoyu Ramen", "Miso Ramen", "Spicy Ramen"},
	"Tempura":      {"Shrimp Tempura", "Vegetable Tempura", "Mixed Tempura"},
	"Tacos":        {"Carne Asada Tacos", "Al Pastor Tacos", "Fish Tacos", "Carnitas Tacos"},
	"Burritos":     {"Vegetarian Burrito", "Carne Asada Burrito", "California Burrito"},
	"Enchiladas":   {"Chicken Enchiladas", "Cheese Enchiladas", "Enchiladas Verdes"},
	"Dim Sum":      {"Har Gow", "Siu Mai", "Char Siu Bao", "Turnip Cake"},
	"Noodles":      {"Chow Mein", "Dan Dan Noodles", "Pad Thai", "Beef Noodle Soup"},
	"Rice Dishes":  {"Fried Rice", "Clay Pot Rice", "Congee"},
	"Curry":        {"Chicken Tikka Masala", "Lamb Vindaloo", "Palak Paneer", "Butter Chicken"},
	"Tandoor":      {"Tandoori Chicken", "Seekh Kebab", "Paneer Tikka"},
	"Biryani":      {"Chicken Biryani", "Lamb Biryani", "Vegetable Biryani"},
	"Bread":        {"Garlic Naan", "Roti", "Paratha"},
	"Burgers":      {"Classic Cheeseburger", "Bacon Burger", "Veggie Burger", "Double Stack"},
	"Appetizers":   {"Spring Rolls", "Nachos", "Fried Calamari", "Hummus", "Chicken Wings"},
	"Main Courses": {"Grilled Salmon", "Chicken Curry", "Beef Stew", "Vegetable Stir-Fry", "Mushroom Risotto"},
	"Desserts":     {"Chocolate Cake", "Ice Cream", "Cheesecake", "Apple Pie", "Tiramisu"},
	"Beverages":    {"Iced Tea", "Coffee", "Lemonade", "Soda", "Milkshake"},
	"Soups":        {"Miso Soup", "Hot and Sour Soup", "Tom Yum", "Wonton Soup"},
}

var dishDescriptions = []string{
	"A delicious and flavorful dish prepared with fresh ingredients",
	"Our chef's special recipe, loved by our customers",
	"A traditional favorite with a modern twist",
	"Made with locally sourced ingredients for authentic flavor",
	"A perfect blend of flavors to satisfy your cravings",
	"Prepared fresh daily using our secret family recipe",
}

// menuPriceBand is the dollar range dishes in a category draw from.
type menuPriceBand struct {
	min, spread float64
}

var categoryPriceBands = map[string]menuPriceBand{
	"Appetizers": {5, 7},
	"Desserts":   {4, 6},
	"Beverages":  {2, 4},
	"Bread":      {3, 5},
	"Soups":      {4, 7},
	"Sides":      {3, 6},
}

// mainCoursePriceBand covers every category without an explicit band.
var mainCoursePriceBand = menuPriceBand{10, 15}

// GenerateMenu synthesizes a menu for the given cuisine: a cuisine-matched
// category set with 2-8 items per category, priced within per-category
// bands. Item ids are positional so a seeded enricher produces identical
// menus.
func (e *Enricher) GenerateMenu(cuisine string) []MenuCategory {
	categories := menuCategoriesFor(cuisine)

	menu := make([]MenuCategory, 0, len(categories))
	for ci, name := range categories {
		itemCount := 2 + e.rng.Intn(7)
		items := make([]MenuItem, 0, itemCount)
		for i := 0; i < itemCount; i++ {
			items = append(items, e.menuItem(name, ci, i))
		}
		menu = append(menu, MenuCategory{
			ID:    fmt.Sprintf("category-%d", ci+1),
			Name:  name,
			Items: items,
		})
	}
	return menu
}

func (e *Enricher) menuItem(category string, categoryIdx, itemIdx int) MenuItem {
	band, ok := categoryPriceBands[category]
	if !ok {
		band = mainCoursePriceBand
	}
	price := decimal.NewFromFloat(band.min + band.spread*e.rng.Float64()).Round(2)

	return MenuItem{
		ID:          fmt.Sprintf("item-%d-%d", categoryIdx+1, itemIdx+1),
		Name:        e.pick(dishNamesFor(category)),
		Description: e.pick(dishDescriptions),
		Price:       price,
		Category:    category,
		Popular:     e.rng.Float64() < 0.3,
		Vegetarian:  e.rng.Float64() < 0.3,
		Spicy:       e.rng.Float64() < 0.3,
	}
}

func (e *Enricher) pick(options []string) string {
	return options[e.rng.Intn(len(options))]
}

func menuCategoriesFor(cuisine string) []string {
	lowered := strings.ToLower(cuisine)
	for _, entry := range cuisineMenuCategories {
		if strings.Contains(lowered, entry.keyword) {
			return entry.categories
		}
	}
	return defaultMenuCategories
}

func dishNamesFor(category string) []string {
	if names, ok := dishNamesByCategory[category]; ok {
		return names
	}
	return dishNamesByCategory["Main Courses"]
}
