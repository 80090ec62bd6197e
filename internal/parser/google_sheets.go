package parser

import (
	"context"
	"fmt"
	"strings"

	"github.com/AndersonViniciusReis/acai-app/internal/domain"
	"github.com/shopspring/decimal"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

// GoogleSheetsParser reads the shop's catalog out of a spreadsheet the
// owner maintains. The "Produtos" sheet carries one size variant per row
// (id, name, description, category, size, price, volume); consecutive rows
// with the same id belong to the same product. The "Complementos" sheet is
// flat (id, name, price).
type GoogleSheetsParser struct {
	service *sheets.Service
}

type Config struct {
	CredentialsJSON []byte
}

func New(cfg Config) (*GoogleSheetsParser, error) {
	ctx := context.Background()

	service, err := sheets.NewService(ctx, option.WithCredentialsJSON(cfg.CredentialsJSON))
	if err != nil {
		return nil, fmt.Errorf("failed to create sheets service: %w", err)
	}

	return &GoogleSheetsParser{
		service: service,
	}, nil
}

func (p *GoogleSheetsParser) ParseCatalog(ctx context.Context, spreadsheetID string) ([]domain.Product, []domain.AddOn, error) {
	products, err := p.parseProducts(ctx, spreadsheetID)
	if err != nil {
		return nil, nil, err
	}

	addOns, err := p.parseAddOns(ctx, spreadsheetID)
	if err != nil {
		return nil, nil, err
	}

	return products, addOns, nil
}

func (p *GoogleSheetsParser) parseProducts(ctx context.Context, spreadsheetID string) ([]domain.Product, error) {
	resp, err := p.service.Spreadsheets.Values.Get(spreadsheetID, "Produtos!A:G").Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to read products sheet: %w", err)
	}

	if len(resp.Values) == 0 {
		return nil, fmt.Errorf("no data found in products sheet")
	}

	var products []domain.Product
	var current *domain.Product

	// skip header
	for i := 1; i < len(resp.Values); i++ {
		row := resp.Values[i]
		if len(row) < 7 {
			continue
		}

		id := cell(row, 0)
		if id == "" {
			continue
		}

		if current == nil || current.ID != id {
			if current != nil {
				products = append(products, *current)
			}
			current = &domain.Product{
				ID:          id,
				Name:        cell(row, 1),
				Description: cell(row, 2),
				Category:    domain.Category(strings.ToLower(cell(row, 3))),
			}
		}

		sizeLabel := cell(row, 4)
		price, err := decimal.NewFromString(strings.TrimSpace(cell(row, 5)))
		if err != nil {
			return nil, fmt.Errorf("product %s: bad price %q: %w", id, cell(row, 5), err)
		}
		if price.IsNegative() {
			return nil, fmt.Errorf("product %s: negative price for size %q", id, sizeLabel)
		}

		// size labels must stay unique within a product
		if _, exists := current.Size(sizeLabel); exists {
			return nil, fmt.Errorf("product %s: duplicate size %q", id, sizeLabel)
		}

		current.Sizes = append(current.Sizes, domain.SizeVariant{
			Label:  sizeLabel,
			Price:  price,
			Volume: cell(row, 6),
		})
	}

	if current != nil {
		products = append(products, *current)
	}

	for _, product := range products {
		if len(product.Sizes) == 0 {
			return nil, fmt.Errorf("product %s has no sizes", product.ID)
		}
	}

	return products, nil
}

func (p *GoogleSheetsParser) parseAddOns(ctx context.Context, spreadsheetID string) ([]domain.AddOn, error) {
	resp, err := p.service.Spreadsheets.Values.Get(spreadsheetID, "Complementos!A:C").Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to read complements sheet: %w", err)
	}

	var addOns []domain.AddOn

	for i := 1; i < len(resp.Values); i++ {
		row := resp.Values[i]
		if len(row) < 3 {
			continue
		}

		id := cell(row, 0)
		if id == "" {
			continue
		}

		price, err := decimal.NewFromString(strings.TrimSpace(cell(row, 2)))
		if err != nil {
			return nil, fmt.Errorf("complement %s: bad price %q: %w", id, cell(row, 2), err)
		}
		if price.IsNegative() {
			return nil, fmt.Errorf("complement %s: negative price", id)
		}

		addOns = append(addOns, domain.AddOn{
			ID:    id,
			Name:  cell(row, 1),
			Price: price,
		})
	}

	return addOns, nil
}

func cell(row []interface{}, idx int) string {
	if idx >= len(row) {
		return ""
	}
	return fmt.Sprintf("%v", row[idx])
}
