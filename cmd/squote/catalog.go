package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"squote/internal/builder"
	"squote/internal/domain"
	"squote/internal/export"
	"squote/internal/xid"
)

func newCatalogCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Manage the reusable item catalog",
	}
	cmd.AddCommand(newCatalogListCmd(a), newCatalogAddCmd(a), newCatalogDeleteCmd(a))
	return cmd
}

func newCatalogListCmd(a *app) *cobra.Command {
	var category, search string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List catalog items",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			filter := builder.Filter{Search: search}
			if category != "" {
				c, ok := domain.ParseCategory(category)
				if !ok {
					return fmt.Errorf("unknown category %q", category)
				}
				filter.Category = &c
			}

			items := builder.New(a.svc, nil).FilteredItems(filter)
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tNAME\tCATEGORY\tPRICE\tUNIT")
			for _, item := range items {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
					xid.Short(item.ID), item.Name, item.Category, export.FormatCurrency(item.UnitPrice), item.Unit)
			}
			return w.Flush()
		},
	}
	cmd.Flags().StringVar(&category, "category", "", "only items of this category")
	cmd.Flags().StringVar(&search, "search", "", "case-insensitive match on name or description")
	return cmd
}

func newCatalogAddCmd(a *app) *cobra.Command {
	var (
		name, description, category, price, unit string
		quantity                                 int
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add an item to the catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, ok := domain.ParseCategory(category)
			if !ok {
				return fmt.Errorf("unknown category %q", category)
			}
			unitPrice, err := decimal.NewFromString(price)
			if err != nil {
				return fmt.Errorf("invalid price %q: %w", price, err)
			}

			item := domain.NewQuoteItem(name, description, c, unitPrice, quantity, unit)
			if err := a.svc.AddDefaultItem(cmd.Context(), item); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "added %s %s\n", xid.Short(item.ID), item.Name)
			return nil
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "item name")
	cmd.Flags().StringVar(&description, "description", "", "item description")
	cmd.Flags().StringVar(&category, "category", domain.CategoryOther.String(), "item category")
	cmd.Flags().StringVar(&price, "price", "0", "unit price")
	cmd.Flags().StringVar(&unit, "unit", "each", "pricing unit, e.g. \"per day\"")
	cmd.Flags().IntVar(&quantity, "quantity", 1, "default quantity")
	_ = cmd.MarkFlagRequired("name")
	return cmd
}

func newCatalogDeleteCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Remove an item from the catalog",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := resolveCatalogID(a.svc.DefaultItems(), args[0])
			if err != nil {
				return err
			}
			if err := a.svc.DeleteDefaultItem(cmd.Context(), id); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "deleted %s\n", xid.Short(id))
			return nil
		},
	}
}

// resolveCatalogID accepts a full id or an unambiguous id prefix.
func resolveCatalogID(items []domain.QuoteItem, ref string) (uuid.UUID, error) {
	if id, err := uuid.Parse(ref); err == nil {
		return id, nil
	}

	var matches []uuid.UUID
	for _, item := range items {
		if xid.HasPrefix(item.ID, ref) {
			matches = append(matches, item.ID)
		}
	}
	switch len(matches) {
	case 0:
		return uuid.Nil, fmt.Errorf("no catalog item matches %q", ref)
	case 1:
		return matches[0], nil
	default:
		return uuid.Nil, fmt.Errorf("catalog reference %q is ambiguous (%d matches)", ref, len(matches))
	}
}
