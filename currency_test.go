package money

import (
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	"golang.org/x/text/language"
)

func TestCurrency_Parse(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			code string
			want Currency
		}{
			{"999", XXX},
			{"xxx", XXX},
			{"XXX", XXX},
			{"392", JPY},
			{"jpy", JPY},
			{"JPY", JPY},
			{"840", USD},
			{"usd", USD},
			{"USD", USD},
			{"512", OMR},
			{"omr", OMR},
			{"OMR", OMR},
			{"036", AUD},
		}
		for _, tt := range tests {
			got, err := ParseCurr(tt.code)
			if err != nil {
				t.Errorf("ParseCurr(%q) failed: %v", tt.code, err)
				continue
			}
			if got != tt.want {
				t.Errorf("ParseCurr(%q) = %v, want %v", tt.code, got, tt.want)
			}
		}
	})

	t.Run("error", func(t *testing.T) {
		tests := []string{
			"", "000", "test", "xbt", "$", "AU$", "BTC", "Usd",
			// valid ISO 4217 codes outside the built-in table
			"KES", "NGN", "PKR", "404",
		}
		for _, tt := range tests {
			_, err := ParseCurr(tt)
			if !errors.Is(err, ErrInvalidCurrency) {
				t.Errorf("ParseCurr(%q) = %v, want %v", tt, err, ErrInvalidCurrency)
			}
		}
	})
}

func TestMustParseCurr(t *testing.T) {
	t.Run("error", func(t *testing.T) {
		defer func() {
			if r := recover(); r == nil {
				t.Errorf("MustParseCurr(\"UUU\") did not panic")
			}
		}()
		MustParseCurr("UUU")
	})
}

func TestCurrency_Scale(t *testing.T) {
	tests := []struct {
		curr Currency
		want int
	}{
		{XXX, 0},
		{JPY, 0},
		{CLP, 0},
		{USD, 2},
		{EUR, 2},
		{OMR, 3},
		{KWD, 3},
	}
	for _, tt := range tests {
		got := tt.curr.Scale()
		if got != tt.want {
			t.Errorf("%v.Scale() = %v, want %v", tt.curr, got, tt.want)
		}
	}
}

func TestCurrency_Num(t *testing.T) {
	tests := []struct {
		curr Currency
		want string
	}{
		{XXX, "999"},
		{AUD, "036"},
		{JPY, "392"},
		{USD, "840"},
		{OMR, "512"},
	}
	for _, tt := range tests {
		got := tt.curr.Num()
		if got != tt.want {
			t.Errorf("%v.Num() = %q, want %q", tt.curr, got, tt.want)
		}
	}
}

func TestCurrency_Code(t *testing.T) {
	tests := []struct {
		curr Currency
		want string
	}{
		{XXX, "XXX"},
		{JPY, "JPY"},
		{USD, "USD"},
		{OMR, "OMR"},
	}
	for _, tt := range tests {
		got := tt.curr.Code()
		if got != tt.want {
			t.Errorf("%v.Code() = %q, want %q", tt.curr, got, tt.want)
		}
		if s := tt.curr.String(); s != tt.want {
			t.Errorf("%v.String() = %q, want %q", tt.curr, s, tt.want)
		}
	}
}

func TestCurrency_Symbol(t *testing.T) {
	tests := []struct {
		curr Currency
		loc  string
		want string
	}{
		{USD, "en-US", "$"},
		{USD, "es-EC", "$"},
		{USD, "en-GB", "US$"},
		{USD, "fr-FR", "US$"},
		{USD, "en", "US$"},
		{USD, "und", "US$"},
		{JPY, "ja-JP", "￥"},
		{JPY, "en-US", "JP¥"},
		{JPY, "ja", "JP¥"},
		{AUD, "en-AU", "$"},
		{AUD, "en-US", "A$"},
		{CAD, "fr-CA", "$"},
		{EUR, "de-DE", "€"},
		{EUR, "en-US", "€"},
		{GBP, "en-GB", "£"},
		{INR, "hi-IN", "₹"},
		{CHF, "de-CH", "CHF"},
		{OMR, "ar-OM", "OMR"},
		{XXX, "en-US", "XXX"},
	}
	for _, tt := range tests {
		loc := language.MustParse(tt.loc)
		got := tt.curr.Symbol(loc)
		if got != tt.want {
			t.Errorf("%v.Symbol(%v) = %q, want %q", tt.curr, loc, got, tt.want)
		}
	}
}

func TestCurrency_Format(t *testing.T) {
	tests := []struct {
		curr         Currency
		format, want string
	}{
		// %T verb
		{USD, "%T", "money.Currency"},
		// %q verb
		{USD, "%q", "\"USD\""},
		{USD, "%6q", " \"USD\""},
		{USD, "%7q", "  \"USD\""},
		{USD, "%07q", "  \"USD\""}, // '0' is ignored
		{USD, "%+7q", "  \"USD\""}, // '+' is ignored
		{USD, "%-7q", "\"USD\"  "},
		// %s verb
		{JPY, "%s", "JPY"},
		{JPY, "%4s", " JPY"},
		{JPY, "%5s", "  JPY"},
		{JPY, "%05s", "  JPY"}, // '0' is ignored
		{JPY, "%-5s", "JPY  "},
		// %v verb
		{OMR, "%v", "OMR"},
		{OMR, "%5v", "  OMR"},
		{OMR, "%-5v", "OMR  "},
		// %c verb
		{XXX, "%c", "XXX"},
		{USD, "%c", "USD"},
		{USD, "%+c", "USD"}, // '+' is ignored
		{USD, "%5c", "  USD"},
		{USD, "%-5c", "USD  "},
		// wrong verbs
		{USD, "%b", "%!b(money.Currency=USD)"},
		{USD, "%d", "%!d(money.Currency=USD)"},
	}
	for _, tt := range tests {
		got := fmt.Sprintf(tt.format, tt.curr)
		if got != tt.want {
			t.Errorf("fmt.Sprintf(%q, %v) = %q, want %q", tt.format, tt.curr, got, tt.want)
		}
	}
}

func TestCurrency_JSON(t *testing.T) {
	type price struct {
		Curr Currency `json:"curr"`
	}

	t.Run("marshal", func(t *testing.T) {
		got, err := json.Marshal(price{Curr: JPY})
		if err != nil {
			t.Fatalf("json.Marshal(JPY) failed: %v", err)
		}
		if want := `{"curr":"JPY"}`; string(got) != want {
			t.Errorf("json.Marshal(JPY) = %s, want %s", got, want)
		}
	})

	t.Run("unmarshal", func(t *testing.T) {
		tests := []struct {
			data string
			want Currency
		}{
			{`{"curr":"USD"}`, USD},
			{`{"curr":"usd"}`, USD},
			{`{"curr":"840"}`, USD},
			{`{"curr":null}`, XXX},
			{`{}`, XXX},
		}
		for _, tt := range tests {
			var got price
			if err := json.Unmarshal([]byte(tt.data), &got); err != nil {
				t.Errorf("json.Unmarshal(%s) failed: %v", tt.data, err)
				continue
			}
			if got.Curr != tt.want {
				t.Errorf("json.Unmarshal(%s) = %v, want %v", tt.data, got.Curr, tt.want)
			}
		}
	})

	t.Run("error", func(t *testing.T) {
		var got price
		err := json.Unmarshal([]byte(`{"curr":"BTC"}`), &got)
		if !errors.Is(err, ErrInvalidCurrency) {
			t.Errorf("json.Unmarshal(BTC) = %v, want %v", err, ErrInvalidCurrency)
		}
	})
}

func TestCurrency_Text(t *testing.T) {
	var c Currency
	if err := c.UnmarshalText([]byte("omr")); err != nil {
		t.Fatalf("UnmarshalText(\"omr\") failed: %v", err)
	}
	if c != OMR {
		t.Errorf("UnmarshalText(\"omr\") = %v, want %v", c, OMR)
	}
	got, err := c.MarshalText()
	if err != nil {
		t.Fatalf("%v.MarshalText() failed: %v", c, err)
	}
	if string(got) != "OMR" {
		t.Errorf("%v.MarshalText() = %s, want OMR", c, got)
	}
}
