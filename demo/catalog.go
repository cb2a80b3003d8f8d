/*
SPDX-License-Identifier: Apache-2.0

Copyright 2024 The Taxinomia Authors

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    https://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

// Package demo provides a sample product catalog and the table sources of
// CSV datasets.
package demo

import (
	_ "embed"
	"strconv"
	"strings"

	"github.com/google/htmlkit/core/csvimport"
	"github.com/google/htmlkit/core/decorators"
	"github.com/google/htmlkit/core/element"
	"github.com/google/htmlkit/core/imageurl"
	"github.com/google/htmlkit/core/listing"
	"github.com/google/htmlkit/core/server"
	"github.com/google/htmlkit/core/tables"
	"github.com/google/htmlkit/core/values"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

//go:embed data/products.csv
var productsCSV string

const (
	CatalogName  = "products"
	CatalogTitle = "Products"

	// StylePrice marks price cells.
	StylePrice = "price"

	// ProductURL links a product title to its page.
	ProductURL = "/products/%id%"
	// DeleteURL is the target of the delete action.
	DeleteURL = "/products/delete/%id%"
)

// LoadCatalog imports the embedded product catalog.
func LoadCatalog() (*csvimport.Dataset, error) {
	dataset, err := csvimport.ImportFromReader(strings.NewReader(productsCSV), csvimport.DefaultOptions())
	if err != nil {
		return nil, errors.Wrap(err, "could not load product catalog")
	}
	return dataset, nil
}

// CatalogOptions configures the catalog table.
type CatalogOptions struct {
	// Images generates the product thumbnails, nil disables them.
	Images       imageurl.Generator
	DefaultImage string
	Logger       logrus.FieldLogger
}

// NewCatalogSource creates the table of the product catalog. Products are
// grouped by category, summarized with thumbnail, title and teaser, and can
// be deleted when they are out of stock.
func NewCatalogSource(products []any, options CatalogOptions) *server.Source {
	if options.Logger == nil {
		options.Logger = logrus.StandardLogger()
	}
	return &server.Source{
		Name:   CatalogName,
		Title:  CatalogTitle,
		Values: products,
		Listing: func(l *listing.Listing) {
			l.SetSearch(listing.PropertySearch(nil, "name", "category", "teaser"))
			l.AddOrderMethod("category", "Category", categoryOrder)
			l.AddOrderMethod("name", "Name", listing.PropertyOrder(nil, "name"))
			l.AddOrderMethod("price", "Price", listing.PropertyOrder(nil, "price"))
			l.AddOrderMethod("stock", "Stock", listing.PropertyOrder(nil, "stock"))
		},
		Decorate: func(table *tables.ArrayTable) error {
			return decorateCatalog(table, options)
		},
	}
}

// categoryOrder orders by category, then by name.
func categoryOrder(a, b any) int {
	if c := listing.PropertyOrder(nil, "category")(a, b); c != 0 {
		return c
	}
	return listing.PropertyOrder(nil, "name")(a, b)
}

func decorateCatalog(table *tables.ArrayTable, options CatalogOptions) error {
	option := decorators.NewValueDecorator("")
	option.SetTransform(decorators.NewOptionTransform("id"))
	table.AddDecorator(option, decorators.NewStaticDecorator(""), false)

	data := decorators.NewDataDecorator(nil, ProductURL, options.Images, options.DefaultImage)
	data.SetLogger(options.Logger)
	for field, property := range map[string]string{
		decorators.FieldTitle:  "name",
		decorators.FieldTeaser: "teaser",
	} {
		if err := data.MapProperty(field, property); err != nil {
			return err
		}
	}
	table.AddDecorator(data, decorators.NewStaticDecorator("Product"), false)

	price := decorators.NewValueDecorator("price")
	price.SetTransform(decorators.TransformFunc(formatPrice))
	price.SetCellClass(StylePrice)
	table.AddDecorator(price, decorators.NewStaticDecorator("Price"), false)

	table.AddDecorator(decorators.NewValueDecorator("stock"), decorators.NewStaticDecorator("Stock"), false)

	remove := decorators.NewActionDecorator("Delete", decorators.HrefTemplate(DeleteURL, "%id%"))
	remove.SetProperty("id")
	remove.SetMessageFunc(func(id any) string {
		return "Delete product " + fmtID(id) + "?"
	})
	remove.SetCheck(deletable)
	table.AddDecorator(remove, nil, false)

	table.AddGroupDecorator(categoryGroups(), false)

	for _, column := range []struct{ property, header string }{
		{"id", "ID"},
		{"name", "Name"},
		{"category", "Category"},
		{"price", "Price"},
		{"stock", "Stock"},
	} {
		table.AddExportDecorator(decorators.NewValueDecorator(column.property), decorators.NewStaticDecorator(column.header))
	}
	return nil
}

// categoryGroups emits a group row whenever the category changes.
func categoryGroups() tables.GroupDecorator {
	first := true
	var last any
	return tables.GroupDecoratorFunc(func(cell *tables.Cell, row *tables.Row, rowNumber int, remaining []any) (bool, error) {
		category, err := values.DefaultAccessor.Property(cell.Value(), "category")
		if err != nil {
			return false, err
		}
		if !first && category == last {
			return false, nil
		}
		first, last = false, category

		text, err := values.Format(category)
		if err != nil {
			return false, err
		}
		if text == "" {
			text = "Uncategorized"
		}
		cell.SetValue(element.Escape(text))
		return true, nil
	})
}

// deletable shows the delete action for products with an id and enables it
// when they are out of stock.
func deletable(value any, rowNumber int) (display, disabled bool) {
	id, _ := values.DefaultAccessor.Property(value, "id")
	if id == nil {
		return false, false
	}
	stock, _ := values.DefaultAccessor.Property(value, "stock")
	n, ok := stock.(int64)
	return true, ok && n > 0
}

func formatPrice(value any) (any, error) {
	switch v := value.(type) {
	case nil:
		return "", nil
	case float64:
		return strconv.FormatFloat(v, 'f', 2, 64), nil
	case int64:
		return strconv.FormatInt(v, 10) + ".00", nil
	}
	return nil, &values.UnsupportedValueError{Value: value}
}

func fmtID(id any) string {
	text, err := values.Format(id)
	if err != nil {
		return ""
	}
	return text
}
