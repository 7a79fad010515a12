package careercenter

import (
	"bytes"
	"context"
	"fmt"
	"net/http/cookiejar"
	"net/url"
	"time"

	"careerwatch-backend/lib/htmlutil"
	"careerwatch-backend/lib/telemetry"

	cloudflarebp "github.com/DaRealFreak/cloudflare-bp-go"
	"github.com/PuerkitoBio/goquery"
	"github.com/go-resty/resty/v2"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

// SourceClient fetches the course listing page and extracts its tables.
type SourceClient struct {
	http *resty.Client
	url  string
}

type SourceOptions struct {
	Url string
}

func NewSourceClient(opts SourceOptions) (*SourceClient, error) {
	link, err := url.Parse(opts.Url)
	if err != nil {
		return nil, err
	}

	client := resty.New()
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, err
	}
	client.SetCookieJar(jar)
	client.GetClient().Transport = cloudflarebp.AddCloudFlareByPass(client.GetClient().Transport)

	client.SetHeader("user-agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/123.0.0.0 Safari/537.36")
	client.SetTimeout(time.Second * 30)

	telemetry.InstrumentResty(client, "careercenter/http")

	return &SourceClient{
		http: client,
		url:  link.String(),
	}, nil
}

// FetchTables downloads the source page and returns its tables in page
// order. The index of a table in the result is its TableIndex.
func (c *SourceClient) FetchTables(ctx context.Context) ([]htmlutil.Table, error) {
	ctx, span := tracer.Start(ctx, "FetchTables")
	defer span.End()

	res, err := c.http.R().
		SetContext(ctx).
		Get(c.url)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to fetch source page")
		return nil, err
	}
	if res.StatusCode() != 200 {
		err := fmt.Errorf("fetching %s returned status %d", c.url, res.StatusCode())
		span.RecordError(err)
		span.SetStatus(codes.Error, "unexpected status code")
		return nil, err
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewBuffer(res.Body()))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to parse source page")
		return nil, err
	}

	tables := htmlutil.ExtractTables(doc)
	span.SetAttributes(attribute.Int("table_count", len(tables)))
	return tables, nil
}
