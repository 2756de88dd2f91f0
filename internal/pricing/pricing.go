package pricing

// DefaultUnitCost is charged per unit for any ingredient missing from a table.
const DefaultUnitCost = 1.0

// CostLookup resolves the price of one unit of an ingredient by name.
type CostLookup interface {
	UnitCost(name string) float64
}

// Table is a static name to unit-cost mapping. Names match exactly as
// written in the catalog: no case folding and no unit conversion.
type Table map[string]float64

// UnitCost returns the table price, or DefaultUnitCost when name is unknown.
func (t Table) UnitCost(name string) float64 {
	if cost, ok := t[name]; ok {
		return cost
	}
	return DefaultUnitCost
}

// DefaultTable returns the curated price list for the built-in catalog.
// Prices are per unit as the catalog writes it (per lb, per cup, per piece...).
func DefaultTable() Table {
	t := make(Table, len(defaultPrices))
	for k, v := range defaultPrices {
		t[k] = v
	}
	return t
}

var defaultPrices = map[string]float64{
	// meat & seafood
	"Ground beef":           5.99,
	"Ground turkey":         4.99,
	"Chicken breast":        3.99,
	"Cooked chicken breast": 2.50,
	"Chicken drumsticks":    1.99,
	"Beef stew meat":        6.99,
	"Pork shoulder":         2.99,
	"Salmon fillets":        9.99,
	"Pepperoni":             0.75,

	// produce
	"Garlic":           0.25,
	"Onion":            0.89,
	"Tomatoes":         0.75,
	"Lettuce":          0.50,
	"Baby carrots":     1.99,
	"Green onions":     0.20,
	"Broccoli florets": 0.75,
	"Lemon":            0.60,
	"Potatoes":         1.20,
	"Bell peppers":     1.25,
	"Strawberries":     3.99,
	"Coleslaw mix":     2.49,

	// dairy
	"Shredded cheddar cheese":    2.00,
	"Shredded mozzarella cheese": 2.00,
	"Parmesan cheese":            2.50,
	"Sour cream":                 1.50,
	"Heavy cream":                2.50,
	"Milk":                       0.25,
	"Eggs":                       0.35,

	// bakery
	"Flour tortillas": 0.40,
	"Corn tortillas":  0.15,
	"Hamburger buns":  0.50,
	"Crusty bread":    3.49,
	"Pizza dough":     2.99,

	// pantry
	"Spaghetti":         1.49,
	"Penne pasta":       1.49,
	"Rice":              0.50,
	"Panko breadcrumbs": 1.00,
	"Olive oil":         0.20,
	"Vegetable oil":     0.10,
	"All-purpose flour": 0.05,
	"Brown sugar":       0.10,
	"Dried lentils":     0.60,
	"Pancake mix":       0.60,

	// frozen
	"Frozen peas and carrots": 1.00,
	"Frozen corn":             0.80,

	// canned
	"Marinara sauce":  0.15,
	"Black beans":     0.08,
	"Kidney beans":    0.08,
	"Diced tomatoes":  0.07,
	"Chicken broth":   0.75,
	"Beef broth":      0.75,
	"Vegetable broth": 0.50,
	"Enchilada sauce": 0.12,
	"Pizza sauce":     1.50,

	// condiments
	"Salsa":          2.00,
	"Ketchup":        0.80,
	"Soy sauce":      0.15,
	"Ranch dressing": 1.50,
	"BBQ sauce":      2.00,
	"Maple syrup":    3.00,

	// spices
	"Taco seasoning": 1.29,
	"Chili powder":   0.25,
	"Paprika":        0.20,
	"Garlic powder":  0.20,
	"Cumin":          0.20,

	// beverages
	"Orange juice": 4.50,
}
