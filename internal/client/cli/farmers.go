package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/mycomarket/mycomarket-go/internal/client/models"
)

// Farmers lists the public farmer directory.
func (a *App) Farmers(ctx context.Context) error {
	page, err := a.farmers.Farmers(ctx, 1)
	if err != nil {
		return err
	}
	if len(page.Items) == 0 {
		printlnFn("No farmers registered yet.")
		return nil
	}
	for _, f := range page.Items {
		printlnFn(fmt.Sprintf("[%s] %s — %s (%d products, ★%.1f)",
			f.ID, f.FarmName, f.Location, f.ProductCount, f.Rating))
	}
	return nil
}

// ShowFarmer opens a single directory entry.
func (a *App) ShowFarmer(ctx context.Context) error {
	id, err := getSimpleText(a.reader, "Enter farmer id", os.Stdout)
	if err != nil {
		return err
	}

	f, err := a.farmers.Farmer(ctx, id)
	if err != nil {
		return err
	}
	printlnFn(f.FarmName)
	printlnFn(fmt.Sprintf("%s, %s", f.Location, f.Phone))
	if f.Bio != "" {
		printlnFn(f.Bio)
	}
	if len(f.Specialties) > 0 {
		printlnFn("Specialties:", strings.Join(f.Specialties, ", "))
	}
	printlnFn(fmt.Sprintf("%d products, ★%.1f", f.ProductCount, f.Rating))
	return nil
}

// BecomeFarmer collects the application form and upgrades the account.
// On success the stored profile is refreshed, so farmer-only commands
// work immediately.
func (a *App) BecomeFarmer(ctx context.Context) error {
	farmName, err := getSimpleText(a.reader, "Farm name", os.Stdout)
	if err != nil {
		return err
	}
	location, err := getSimpleText(a.reader, "Location", os.Stdout)
	if err != nil {
		return err
	}
	phone, err := getSimpleText(a.reader, "Contact phone", os.Stdout)
	if err != nil {
		return err
	}
	bio, err := GetMultiline(a.reader, "Tell buyers about your farm (optional)", os.Stdout)
	if err != nil {
		return err
	}

	farmer, err := a.farmers.BecomeFarmer(ctx, models.RegisterFarmerRequest{
		FarmName: farmName,
		Location: location,
		Phone:    phone,
		Bio:      bio,
	})
	if err != nil {
		return err
	}
	printlnFn(fmt.Sprintf("Welcome to the market, %s!", farmer.FarmName))
	return nil
}
