package telegram

import (
	"context"
	"fmt"
	"time"

	"careerwatch-backend/lib/telemetry"

	"github.com/go-resty/resty/v2"
)

// Client is a minimal Telegram Bot API client, it only implements
// what is needed to push plain text messages to a chat or channel.
type Client struct {
	http *resty.Client
}

type ClientOptions struct {
	Token string
}

func NewClient(opts ClientOptions) (*Client, error) {
	if opts.Token == "" {
		return nil, fmt.Errorf("a bot token was not provided")
	}

	client := resty.New()
	client.SetBaseURL(fmt.Sprintf("https://api.telegram.org/bot%s", opts.Token))
	client.SetTimeout(time.Second * 30)
	telemetry.InstrumentResty(client, "lib/telegram")

	return &Client{http: client}, nil
}

type SendMessageRequest struct {
	ChatId    string `json:"chat_id"`
	Text      string `json:"text"`
	ParseMode string `json:"parse_mode,omitempty"`
}

type apiResponse struct {
	Ok          bool   `json:"ok"`
	Description string `json:"description"`
}

func (c *Client) SendMessage(ctx context.Context, req SendMessageRequest) error {
	var body apiResponse
	res, err := c.http.R().
		SetContext(ctx).
		SetBody(req).
		SetResult(&body).
		SetError(&body).
		Post("/sendMessage")
	if err != nil {
		return err
	}
	if !body.Ok {
		return fmt.Errorf(
			"sendMessage failed with status %d: %s",
			res.StatusCode(), body.Description,
		)
	}
	return nil
}
