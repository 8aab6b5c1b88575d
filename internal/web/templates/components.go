// Package templates holds the templ components of the swatches page.
package templates

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/a-h/templ"

	"github.com/emiliopalmerini/swatches/internal/domain"
)

const htmxScript = "https://unpkg.com/htmx.org@2.0.4"

// Page is the full document around the swatch grid.
func Page(surface domain.Surface) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		p := &printer{w: w}
		p.raw(`<!DOCTYPE html><html lang="en"><head><meta charset="utf-8">`)
		p.raw(`<meta name="viewport" content="width=device-width, initial-scale=1">`)
		p.raw(`<title>Swatches</title>`)
		p.raw(`<link rel="stylesheet" href="/static/style.css">`)
		p.printf(`<script src="%s"></script>`, esc(htmxScript))
		p.raw(`<script src="/static/app.js" defer></script></head><body>`)

		p.raw(`<header class="toolbar">`)
		p.raw(`<button class="generate" hx-post="/api/generate" hx-target="#swatches" hx-swap="outerHTML">Generate</button>`)
		p.raw(`<button class="open-library" hx-get="/api/library" hx-target="#library" hx-swap="outerHTML">Library</button>`)
		p.raw(`</header>`)
		if p.err != nil {
			return p.err
		}

		if err := Grid(surface).Render(ctx, w); err != nil {
			return err
		}
		if surface.LibraryOpen {
			if err := Library(surface.Library).Render(ctx, w); err != nil {
				return err
			}
		} else if err := LibraryClosed().Render(ctx, w); err != nil {
			return err
		}
		if err := Popup(surface.Copied).Render(ctx, w); err != nil {
			return err
		}
		if err := Toast(surface.Notice).Render(ctx, w); err != nil {
			return err
		}

		p.raw(`</body></html>`)
		return p.err
	})
}

// Grid renders every swatch in slot order.
func Grid(surface domain.Surface) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, `<main id="swatches" class="swatches">`); err != nil {
			return err
		}
		for _, v := range surface.Swatches {
			if err := Swatch(v).Render(ctx, w); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, `</main>`)
		return err
	})
}

// Swatch renders one slot: background, hex label, lock and adjust toggles,
// copy button and, when open, the three channel sliders.
func Swatch(v domain.SwatchView) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		p := &printer{w: w}
		id := swatchID(v.Index)
		base := "/api/swatches/" + strconv.Itoa(v.Index)

		p.printf(`<section id="%s" class="swatch" style="--ink: %s">`, id, esc(v.Ink.Hex()))
		if p.err != nil {
			return p.err
		}
		if err := PreviewStyle(v).Render(ctx, w); err != nil {
			return err
		}

		if v.Err != nil {
			p.printf(`<p class="swatch-error">%s</p></section>`, esc(v.Err.Error()))
			return p.err
		}

		p.printf(`<span class="label">%s</span>`, esc(v.Label))
		p.raw(`<div class="controls">`)
		p.printf(`<button class="lock" aria-pressed="%t" hx-post="%s/lock" hx-target="#%s" hx-swap="outerHTML">%s</button>`,
			v.Locked, base, id, lockGlyph(v.Locked))
		p.printf(`<button class="adjust" aria-expanded="%t" hx-post="%s/panel" hx-target="#%s" hx-swap="outerHTML">&#9881;</button>`,
			v.PanelOpen, base, id)
		p.printf(`<button class="copy" data-hex="%s" hx-post="%s/copy" hx-target="#popup" hx-swap="outerHTML">copy</button>`,
			esc(v.Label), base)
		p.raw(`</div>`)

		if v.PanelOpen {
			p.printf(`<form class="panel" hx-post="%s/commit" hx-trigger="change" hx-target="#%s" hx-swap="outerHTML">`, base, id)
			for _, ch := range domain.Channels {
				r := ch.Range()
				p.printf(`<label class="slider slider-%s">%s`, ch, ch)
				p.printf(`<input type="range" name="%s" min="%s" max="%s" step="%s" value="%s" `,
					ch, num(r.Min), num(r.Max), num(r.Step), num(v.Sliders.Get(ch)))
				p.printf(`hx-post="%s/preview" hx-trigger="input" hx-target="#%s" hx-swap="outerHTML" hx-vals='{"channel":"%s"}'>`,
					base, previewID(v.Index), ch)
				p.raw(`</label>`)
			}
			p.printf(`<button type="button" class="close" hx-delete="%s/panel" hx-target="#%s" hx-swap="outerHTML">close</button>`, base, id)
			p.raw(`</form>`)
		}

		p.raw(`</section>`)
		return p.err
	})
}

// PreviewStyle carries the visual surface of a slot as CSS variables, so a
// preview can repaint the swatch without replacing its sliders.
func PreviewStyle(v domain.SwatchView) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		p := &printer{w: w}
		p.printf(`<style id="%s">#%s{`, previewID(v.Index), swatchID(v.Index))
		if v.Background != "" {
			p.printf(`--bg:%s;`, v.Background)
		}
		for _, ch := range domain.Channels {
			if stops := v.Gradients.For(ch); len(stops) > 0 {
				p.printf(`--%s:%s;`, ch, gradient(stops))
			}
		}
		p.raw(`}</style>`)
		return p.err
	})
}

// Popup is the "copied" confirmation; an empty hex renders it hidden.
func Popup(hex string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		p := &printer{w: w}
		if hex == "" {
			p.raw(`<div id="popup" class="popup" hidden></div>`)
			return p.err
		}
		p.printf(`<div id="popup" class="popup" data-hex="%s">Copied %s</div>`, esc(hex), esc(hex))
		return p.err
	})
}

func Toast(msg string) templ.Component {
	return toast(msg, false)
}

// ToastOOB is a toast swapped out of band next to another fragment.
func ToastOOB(msg string) templ.Component {
	return toast(msg, true)
}

func toast(msg string, oob bool) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		p := &printer{w: w}
		attr := ""
		if oob {
			attr = ` hx-swap-oob="true"`
		}
		if msg == "" {
			p.printf(`<div id="toast" class="toast"%s hidden></div>`, attr)
			return p.err
		}
		p.printf(`<div id="toast" class="toast" role="alert"%s hx-delete="/api/popup" hx-trigger="click" hx-swap="none">%s</div>`,
			attr, esc(msg))
		return p.err
	})
}

// Library lists saved palettes, newest first, with the save form on top.
func Library(saved []domain.SavedPalette) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		p := &printer{w: w}
		p.raw(`<aside id="library" class="library">`)
		p.raw(`<form class="save" hx-post="/api/library" hx-target="#library" hx-swap="outerHTML">`)
		p.raw(`<input type="text" name="name" placeholder="Palette name" required>`)
		p.raw(`<button type="submit">Save</button></form>`)

		if len(saved) == 0 {
			p.raw(`<p class="empty">No saved palettes yet.</p>`)
		}
		p.raw(`<ul>`)
		for i := len(saved) - 1; i >= 0; i-- {
			rec := saved[i]
			p.printf(`<li><button class="select" hx-post="/api/library/%s/select" hx-target="#swatches" hx-swap="outerHTML">`,
				esc(rec.ID))
			p.printf(`<span class="name">%s</span>`, esc(rec.Name))
			for _, hex := range rec.Colors {
				p.printf(`<span class="chip" style="background:%s"></span>`, esc(hex))
			}
			p.raw(`</button></li>`)
		}
		p.raw(`</ul>`)
		p.raw(`<button class="close" hx-delete="/api/library" hx-target="#library" hx-swap="outerHTML">close</button>`)
		p.raw(`</aside>`)
		return p.err
	})
}

func LibraryClosed() templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := io.WriteString(w, `<aside id="library" class="library" hidden></aside>`)
		return err
	})
}

// LibraryClosedOOB hides the library panel from a response aimed elsewhere.
func LibraryClosedOOB() templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := io.WriteString(w, `<aside id="library" class="library" hx-swap-oob="true" hidden></aside>`)
		return err
	})
}

// Join renders components one after another.
func Join(components ...templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		for _, c := range components {
			if err := c.Render(ctx, w); err != nil {
				return err
			}
		}
		return nil
	})
}

// printer keeps the first write error so markup can be emitted in a row.
type printer struct {
	w   io.Writer
	err error
}

func (p *printer) raw(s string) {
	if p.err == nil {
		_, p.err = io.WriteString(p.w, s)
	}
}

func (p *printer) printf(format string, args ...any) {
	if p.err == nil {
		_, p.err = fmt.Fprintf(p.w, format, args...)
	}
}

func esc(s string) string {
	return templ.EscapeString(s)
}

func swatchID(i int) string { return "swatch-" + strconv.Itoa(i) }

func previewID(i int) string { return "preview-" + strconv.Itoa(i) }

func lockGlyph(locked bool) string {
	if locked {
		return "&#128274;"
	}
	return "&#128275;"
}

func gradient(stops []string) string {
	return "linear-gradient(to right, " + strings.Join(stops, ", ") + ")"
}

func num(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
