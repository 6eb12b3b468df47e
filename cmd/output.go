package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/shopspring/decimal"

	"github.com/rated-network/rated-go/client"
	"github.com/rated-network/rated-go/decode"
	"github.com/rated-network/rated-go/filter"
)

// gweiPerEther scales Gwei amounts to ether
const gweiPerEther = 9

// printer writes records as JSON lines, skipping those the filter rejects
type printer struct {
	enc    *json.Encoder
	filter *filter.Filter

	printed int
	skipped int
}

func newPrinter(w io.Writer, f *filter.Filter) *printer {
	return &printer{enc: json.NewEncoder(w), filter: f}
}

// Print writes record unless the filter rejects it
func (p *printer) Print(record any) error {
	fields, err := decode.Fields(record)
	if err != nil {
		return fmt.Errorf("failed to render record: %w", err)
	}

	if p.filter != nil {
		ok, err := p.filter.Match(fields)
		if err != nil {
			return err
		}
		if !ok {
			p.skipped++
			return nil
		}
	}

	if err := p.enc.Encode(fields); err != nil {
		return fmt.Errorf("failed to write record: %w", err)
	}
	p.printed++
	return nil
}

// printAll prints every record in records
func printAll[T any](p *printer, records []T) error {
	for _, record := range records {
		if err := p.Print(record); err != nil {
			return err
		}
	}
	return nil
}

// printPages drains pager into p, calling each for every record printed or
// skipped. It returns the first transport, decoding or filter error.
func printPages[T any](ctx context.Context, p *printer, pager *client.Pager[T], each func(T)) error {
	for record, err := range pager.All(ctx) {
		if err != nil {
			return err
		}
		if err := p.Print(record); err != nil {
			return err
		}
		if each != nil {
			each(record)
		}
	}

	logger.Debug().
		Int("pages", pager.Pages()).
		Int("printed", p.printed).
		Int("skipped", p.skipped).
		Msg("Finished paging")

	return nil
}

// gweiToETH renders a Gwei amount in ether
func gweiToETH(gwei int64) string {
	return decimal.NewFromInt(gwei).Shift(-gweiPerEther).StringFixed(4) + " ETH"
}

// summarize writes a colored "label: value" line to w
func summarize(w io.Writer, label string, value any) {
	fmt.Fprintf(w, "%s %v\n", color.CyanString(label+":"), value)
}
