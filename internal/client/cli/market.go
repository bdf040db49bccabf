package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/mycomarket/mycomarket-go/internal/client/models"
)

// Market lists the product catalog, optionally narrowed by a category or a
// search term.
func (a *App) Market(ctx context.Context) error {
	category, err := getSimpleText(a.reader, "Filter by category (optional)", os.Stdout)
	if err != nil {
		return err
	}
	search, err := getSimpleText(a.reader, "Search (optional)", os.Stdout)
	if err != nil {
		return err
	}

	page, err := a.market.Products(ctx, 1, models.ProductFilter{Category: category, Search: search})
	if err != nil {
		return err
	}
	if len(page.Items) == 0 {
		printlnFn("No products found.")
		return nil
	}
	for _, p := range page.Items {
		printProductLine(&p)
	}
	if page.HasNext() {
		printlnFn(fmt.Sprintf("Page 1 of %d.", page.TotalPages))
	}
	return nil
}

// ShowProduct opens a single listing with its latest reviews, offering to
// add one when logged in.
func (a *App) ShowProduct(ctx context.Context) error {
	id, err := getSimpleText(a.reader, "Enter product id", os.Stdout)
	if err != nil {
		return err
	}

	product, err := a.market.Product(ctx, id)
	if err != nil {
		return err
	}
	printProduct(product)

	reviews, err := a.market.Reviews(ctx, id, 1)
	if err != nil {
		return err
	}
	for _, r := range reviews.Items {
		printlnFn(fmt.Sprintf("  %s ★%d: %s", r.AuthorName, r.Rating, r.Body))
	}

	if !a.isLoggedIn() {
		return nil
	}

	action, err := getSimpleText(a.reader, "Action: (r)eview, Enter to go back", os.Stdout)
	if err != nil {
		return err
	}
	if action == "r" || action == "review" {
		rating, err := GetNumber(a.reader, "Rating 1-5", 5, os.Stdout)
		if err != nil {
			return err
		}
		body, err := GetMultiline(a.reader, "Enter review text", os.Stdout)
		if err != nil {
			return err
		}
		if _, err := a.market.AddReview(ctx, id, rating, body); err != nil {
			return err
		}
		printlnFn("Review posted.")
	}
	return nil
}

// Sell collects the listing fields and publishes a product. The service
// rejects the call for non-farmer accounts before anything is sent.
func (a *App) Sell(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Product name", os.Stdout)
	if err != nil {
		return err
	}
	description, err := GetMultiline(a.reader, "Description", os.Stdout)
	if err != nil {
		return err
	}
	category, err := getSimpleText(a.reader, "Category", os.Stdout)
	if err != nil {
		return err
	}
	priceText, err := getSimpleText(a.reader, "Price", os.Stdout)
	if err != nil {
		return err
	}
	price, err := parsePrice(priceText)
	if err != nil {
		return err
	}
	unit, err := getSimpleText(a.reader, "Unit (kg, box, ...)", os.Stdout)
	if err != nil {
		return err
	}
	stock, err := GetNumber(a.reader, "Stock", 0, os.Stdout)
	if err != nil {
		return err
	}

	product, err := a.market.CreateProduct(ctx, models.CreateProductRequest{
		Name:        name,
		Description: description,
		Category:    category,
		Price:       price,
		Unit:        unit,
		Stock:       stock,
	})
	if err != nil {
		return err
	}
	printlnFn("Listed:", product.ID)
	return nil
}
