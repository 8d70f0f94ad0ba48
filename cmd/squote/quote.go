package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"squote/internal/builder"
	"squote/internal/domain"
	"squote/internal/export"
)

const dateLayout = "2006-01-02"

func newQuoteCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "quote",
		Short: "Create, inspect and export quotes",
	}
	cmd.AddCommand(
		newQuoteListCmd(a),
		newQuoteNewCmd(a),
		newQuoteShowCmd(a),
		newQuoteExportCmd(a),
		newQuoteStatusCmd(a),
		newQuoteDeleteCmd(a),
	)
	return cmd
}

func newQuoteListCmd(a *app) *cobra.Command {
	var search string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List saved quotes, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "NUMBER\tCLIENT\tEVENT\tEVENT DATE\tSTATUS\tTOTAL")
			for _, q := range a.svc.SearchQuotes(search) {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
					q.QuoteNumber(), q.Event.ClientName, q.Event.EventName,
					q.Event.EventDate.Format(dateLayout), q.Status, export.FormatCurrency(q.TotalAmount()))
			}
			return w.Flush()
		},
	}
	cmd.Flags().StringVar(&search, "search", "", "match client name, event name or quote number")
	return cmd
}

type newQuoteOptions struct {
	client       string
	email        string
	phone        string
	event        string
	eventType    string
	date         string
	venue        string
	guests       int
	duration     float64
	requirements string
	items        []string
	discount     string
	tax          string
	fees         string
	notes        string
}

func newQuoteNewCmd(a *app) *cobra.Command {
	var opts newQuoteOptions

	cmd := &cobra.Command{
		Use:   "new",
		Short: "Build and save a new quote from catalog items",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			b := builder.New(a.svc, nil)
			if err := applyNewQuoteOptions(b, opts); err != nil {
				return err
			}

			if errs := b.ValidationErrors(); len(errs) > 0 {
				for _, msg := range errs {
					fmt.Fprintln(cmd.ErrOrStderr(), msg)
				}
				return fmt.Errorf("quote is not valid (%d problems)", len(errs))
			}
			if err := b.SaveQuote(cmd.Context()); err != nil {
				return err
			}

			q := b.Quote()
			fmt.Fprintf(cmd.OutOrStdout(), "saved %s total %s\n", q.QuoteNumber(), export.FormatCurrency(q.TotalAmount()))
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVar(&opts.client, "client", "", "client name")
	f.StringVar(&opts.email, "email", "", "client email")
	f.StringVar(&opts.phone, "phone", "", "client phone")
	f.StringVar(&opts.event, "event", "", "event name")
	f.StringVar(&opts.eventType, "type", domain.EventTypeWedding.String(), "event type")
	f.StringVar(&opts.date, "date", "", "event date (YYYY-MM-DD), defaults to today")
	f.StringVar(&opts.venue, "venue", "", "venue")
	f.IntVar(&opts.guests, "guests", 0, "guest count")
	f.Float64Var(&opts.duration, "duration", domain.DefaultDurationHours, "event duration in hours")
	f.StringVar(&opts.requirements, "requirements", "", "special requirements")
	f.StringArrayVar(&opts.items, "item", nil, "catalog item as \"name[:qty]\", repeatable")
	f.StringVar(&opts.discount, "discount", "0", "discount percentage")
	f.StringVar(&opts.tax, "tax", domain.DefaultTaxPercentage.String(), "tax percentage")
	f.StringVar(&opts.fees, "fees", "0", "additional fees")
	f.StringVar(&opts.notes, "notes", "", "notes printed on the quote")
	return cmd
}

func applyNewQuoteOptions(b *builder.Builder, opts newQuoteOptions) error {
	event := b.Quote().Event
	event.ClientName = strings.TrimSpace(opts.client)
	event.ClientEmail = strings.TrimSpace(opts.email)
	event.ClientPhone = strings.TrimSpace(opts.phone)
	event.EventName = strings.TrimSpace(opts.event)
	event.Venue = strings.TrimSpace(opts.venue)
	event.GuestCount = opts.guests
	event.Duration = opts.duration
	event.SpecialRequirements = opts.requirements

	eventType, ok := domain.ParseEventType(opts.eventType)
	if !ok {
		return fmt.Errorf("unknown event type %q", opts.eventType)
	}
	event.EventType = eventType

	if opts.date != "" {
		date, err := time.ParseInLocation(dateLayout, opts.date, time.Local)
		if err != nil {
			return fmt.Errorf("invalid date %q: %w", opts.date, err)
		}
		event.EventDate = date
	}
	b.UpdateEvent(event)

	catalog := b.FilteredItems(builder.Filter{})
	for _, raw := range opts.items {
		name, qty, err := parseItemFlag(raw)
		if err != nil {
			return err
		}
		item, ok := findByName(catalog, name)
		if !ok {
			return fmt.Errorf("unknown catalog item %q", name)
		}
		if b.Quote().IndexOfItem(item.ID) < 0 {
			b.ToggleItemSelection(item.ID)
		}
		b.UpdateItemQuantity(item.ID, qty)
	}

	for _, field := range []struct {
		name  string
		value string
		apply func(decimal.Decimal)
	}{
		{"discount", opts.discount, b.UpdateDiscount},
		{"tax", opts.tax, b.UpdateTax},
		{"fees", opts.fees, b.UpdateAdditionalFees},
	} {
		value, err := decimal.NewFromString(field.value)
		if err != nil {
			return fmt.Errorf("invalid %s %q: %w", field.name, field.value, err)
		}
		field.apply(value)
	}

	b.UpdateNotes(opts.notes)
	return nil
}

// parseItemFlag splits "name[:qty]". A suffix that is not a number is part
// of the name.
func parseItemFlag(raw string) (string, int, error) {
	name, qty := strings.TrimSpace(raw), 1
	if idx := strings.LastIndex(name, ":"); idx >= 0 {
		if n, err := strconv.Atoi(strings.TrimSpace(name[idx+1:])); err == nil {
			name, qty = strings.TrimSpace(name[:idx]), n
		}
	}
	if name == "" {
		return "", 0, fmt.Errorf("empty item in %q", raw)
	}
	return name, domain.ClampQuantity(qty), nil
}

func findByName(items []domain.QuoteItem, name string) (domain.QuoteItem, bool) {
	for _, item := range items {
		if strings.EqualFold(item.Name, name) {
			return item, true
		}
	}
	return domain.QuoteItem{}, false
}

func newQuoteShowCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show <ref>",
		Short: "Print a quote as text",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			q, err := a.svc.FindQuote(args[0])
			if err != nil {
				return fmt.Errorf("quote %q: %w", args[0], err)
			}
			_, err = io.WriteString(cmd.OutOrStdout(), a.svc.GenerateQuoteText(q))
			return err
		},
	}
}

func newQuoteExportCmd(a *app) *cobra.Command {
	var format, out string

	cmd := &cobra.Command{
		Use:   "export <ref>",
		Short: "Export a quote as text, XLSX or PDF",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			q, err := a.svc.FindQuote(args[0])
			if err != nil {
				return fmt.Errorf("quote %q: %w", args[0], err)
			}

			data, err := renderQuote(q, format)
			if err != nil {
				return err
			}
			if out == "" || out == "-" {
				_, err = cmd.OutOrStdout().Write(data)
				return err
			}
			if err := os.WriteFile(out, data, 0o644); err != nil {
				return fmt.Errorf("write %s: %w", out, err)
			}
			a.logger.WithField("path", out).Info("quote exported")
			return nil
		},
	}
	cmd.Flags().StringVar(&format, "format", "text", "text, xlsx or pdf")
	cmd.Flags().StringVarP(&out, "out", "o", "", "output file, stdout when empty")
	return cmd
}

func renderQuote(q domain.Quote, format string) ([]byte, error) {
	switch strings.ToLower(format) {
	case "text", "txt":
		return []byte(export.Text(q)), nil
	case "xlsx", "excel":
		return export.XLSX(q)
	case "pdf":
		return export.PDF(q)
	default:
		return nil, fmt.Errorf("unknown format %q (want text, xlsx or pdf)", format)
	}
}

func newQuoteStatusCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "status <ref> <status>",
		Short: "Change the status of a quote",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			status, ok := domain.ParseQuoteStatus(args[1])
			if !ok {
				return fmt.Errorf("unknown status %q", args[1])
			}
			q, err := a.svc.FindQuote(args[0])
			if err != nil {
				return fmt.Errorf("quote %q: %w", args[0], err)
			}

			b := builder.New(a.svc, &q)
			b.UpdateStatus(status)
			if err := b.SaveQuote(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s is now %s\n", q.QuoteNumber(), status)
			return nil
		},
	}
}

func newQuoteDeleteCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <ref>",
		Short: "Delete a quote",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			q, err := a.svc.FindQuote(args[0])
			if err != nil {
				return fmt.Errorf("quote %q: %w", args[0], err)
			}
			if err := a.svc.DeleteQuote(cmd.Context(), q.ID); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "deleted %s\n", q.QuoteNumber())
			return nil
		},
	}
}
