package cli

import (
	"fmt"
	"strings"

	"github.com/mycomarket/mycomarket-go/internal/client/models"
)

// printPostLine renders a post as a single feed row.
func printPostLine(p *models.Post) {
	printlnFn(fmt.Sprintf("[%s] %s — %s (♥%d ⌨%d)",
		p.ID, p.Title, p.AuthorName, p.LikeCount, p.CommentCount))
}

// printPost renders the full post view.
func printPost(p *models.Post) {
	printlnFn(p.Title)
	printlnFn(fmt.Sprintf("by %s on %s", p.AuthorName, p.CreatedAt.Format("2006-01-02")))
	if len(p.Tags) > 0 {
		printlnFn("tags:", strings.Join(p.Tags, ", "))
	}
	printlnFn(p.Body)
	printlnFn(fmt.Sprintf("♥%d ⌨%d", p.LikeCount, p.CommentCount))
}

// printProductLine renders a product as a single catalog row.
func printProductLine(p *models.Product) {
	printlnFn(fmt.Sprintf("[%s] %s — %.2f/%s by %s (★%.1f)",
		p.ID, p.Name, p.Price, p.Unit, p.FarmerName, p.Rating))
}

// printProduct renders the full listing view.
func printProduct(p *models.Product) {
	printlnFn(p.Name)
	printlnFn(fmt.Sprintf("%.2f per %s, %d in stock", p.Price, p.Unit, p.Stock))
	printlnFn(fmt.Sprintf("by %s, category %s", p.FarmerName, p.Category))
	if p.Description != "" {
		printlnFn(p.Description)
	}
	printlnFn(fmt.Sprintf("★%.1f (%d reviews)", p.Rating, p.ReviewCount))
}

// parsePrice parses a user-entered decimal price.
func parsePrice(text string) (float64, error) {
	var price float64
	if _, err := fmt.Sscanf(strings.TrimSpace(text), "%f", &price); err != nil {
		return 0, fmt.Errorf("not a price: %q", text)
	}
	return price, nil
}
