package main

import (
	"fmt"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/carterpaul1/cis453l-project/pkg/domain/model"
)

func catalogCommand() *cli.Command {
	return &cli.Command{
		Name:  "catalog",
		Usage: "print the menu the order form will sell from",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "file",
				Usage:   "YAML catalog to load instead of the configured one",
				EnvVars: []string{"ORDERFORM_CATALOG_PATH"},
			},
		},
		Action: func(c *cli.Context) error {
			catalog, err := loadCatalog(c.String("file"))
			if err != nil {
				return err
			}
			for _, line := range describeCatalog(catalog) {
				fmt.Fprintln(c.App.Writer, line)
			}
			return nil
		},
	}
}

// describeCatalog renders one line per item, e.g.
// "Latte: Small $3.00, Medium $4.00, Large $5.00".
func describeCatalog(catalog *model.Catalog) []string {
	entries := catalog.Entries()
	lines := make([]string, 0, len(entries))
	for _, entry := range entries {
		sizes := make([]string, 0, len(entry.Sizes))
		for _, size := range entry.Sizes {
			sizes = append(sizes, size.Label+" "+model.FormatPrice(size.Price))
		}
		lines = append(lines, entry.Item+": "+strings.Join(sizes, ", "))
	}
	return lines
}
