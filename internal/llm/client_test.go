package llm

import (
	"context"
	"errors"
	"testing"
)

func TestUnavailableClientAlwaysFails(t *testing.T) {
	t.Parallel()

	reply, err := Unavailable().GenerateReply(context.Background(), "sys", "user")
	if !errors.Is(err, ErrUnavailable) {
		t.Errorf("err = %v, want ErrUnavailable", err)
	}
	if reply != "" {
		t.Errorf("reply = %q, want empty", reply)
	}
}

func TestFromConfigWithoutCredential(t *testing.T) {
	t.Parallel()

	client, enabled := FromConfig(Config{})
	if enabled {
		t.Error("enabled = true without a credential")
	}
	if _, err := client.GenerateReply(context.Background(), "s", "u"); !errors.Is(err, ErrUnavailable) {
		t.Errorf("selected client err = %v, want ErrUnavailable", err)
	}
}

func TestFromConfigWithCredential(t *testing.T) {
	t.Parallel()

	client, enabled := FromConfig(Config{APIKey: "sk-test"})
	if !enabled {
		t.Error("enabled = false with a credential present")
	}
	if _, ok := client.(*OpenAIClient); !ok {
		t.Errorf("selected client is %T, want *OpenAIClient", client)
	}
}

func TestFromConfigWithBadBaseURL(t *testing.T) {
	t.Parallel()

	// A credential alone is not enough; a client that cannot be
	// constructed still disables AI rather than failing startup.
	client, enabled := FromConfig(Config{APIKey: "sk-test", BaseURL: "not a url"})
	if enabled {
		t.Error("enabled = true despite an unusable base URL")
	}
	if _, err := client.GenerateReply(context.Background(), "s", "u"); !errors.Is(err, ErrUnavailable) {
		t.Errorf("selected client err = %v, want ErrUnavailable", err)
	}
}
