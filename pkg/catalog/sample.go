package catalog

import (
	"math/rand"

	"github.com/XiaoConstantine/knapsack-go/pkg/errors"
)

// sampleNames are crop/input names used for generated demo catalogs.
var sampleNames = []string{
	"Maize", "Soy", "Wheat", "Rice", "Beans", "Coffee", "Sugarcane",
	"Cotton", "Cassava", "Potato", "Tomato", "Onion", "Garlic", "Carrot",
	"Pumpkin", "Watermelon", "Melon", "Banana", "Orange", "Mango", "Grape",
	"Apple", "Pear", "Peach", "Strawberry", "Lettuce", "Kale", "Broccoli",
	"Cauliflower", "Spinach",
}

// GenerateSample builds a deterministic demo catalog of numItems items with
// costs in [5,50) and values in [10,150). The same seed yields the same
// catalog. numItems is capped at the number of distinct sample names.
func GenerateSample(numItems int, seed int64) (*Catalog, error) {
	if numItems <= 0 {
		return nil, errors.WithFields(
			errors.New(errors.InvalidInput, "sample size must be positive"),
			errors.Fields{"num_items": numItems})
	}
	if numItems > len(sampleNames) {
		numItems = len(sampleNames)
	}

	rng := rand.New(rand.NewSource(seed))

	// Draw a random subset of names, keeping them unique.
	perm := rng.Perm(len(sampleNames))
	items := make([]Item, numItems)
	for i := 0; i < numItems; i++ {
		items[i] = Item{
			Name:  sampleNames[perm[i]],
			Cost:  float64(5 + rng.Intn(45)),
			Value: float64(10 + rng.Intn(140)),
		}
	}

	return New(items)
}
