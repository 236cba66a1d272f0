// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"encoding/json"
	"html/template"
	"time"

	"github.com/MKhiriev/go-public-env/internal/render"
	"github.com/MKhiriev/go-public-env/publicenv"
)

const (
	mountKey     = "public-env"
	defaultTitle = "go-public-env"
	// envOutputID is the element the home page prints the server read into.
	envOutputID = "__PUBLIC_ENV__"
)

// Layout is the root layout. It mounts the public env component once per
// render tree and renders the document head.
func Layout(env *publicenv.Env) render.Layout {
	return func(ctx context.Context, t *render.Tree, title string) template.HTML {
		t.MountOnce(mountKey, func() {
			env.Mount(ctx, t, publicenv.Props{Nonce: t.Nonce()})
		})

		if title == "" {
			title = defaultTitle
		}
		return `<meta charset="utf-8"><meta name="viewport" content="width=device-width, initial-scale=1">` +
			"<title>" + template.HTML(template.HTMLEscapeString(title)) + "</title>"
	}
}

// NewRenderer returns the renderer used for every page of the application.
func NewRenderer(env *publicenv.Env) *render.Renderer {
	return render.NewRenderer(Layout(env),
		render.WithNotFound(render.Page{
			Title:  "404: This page could not be found.",
			Render: staticBody(`<h1>404</h1><h2>This page could not be found.</h2>`),
		}),
		render.WithErrorPage(func(error) render.Page {
			return render.Page{
				Title:  "Application error",
				Render: staticBody(`<h2>Application error: a server-side exception has occurred.</h2>`),
			}
		}),
	)
}

// Routes lists the pages of the application.
func Routes(env *publicenv.Env, loadingDelay time.Duration, withWasm bool) []render.Route {
	return []render.Route{
		{Path: "/", Page: homePage(env)},
		{Path: "/client-test", Page: clientTestPage(withWasm)},
		{Path: "/loading-test", Page: loadingTestPage(loadingDelay)},
		{Path: "/not-found-test", Page: notFoundTestPage()},
		{Path: "/error-test", Page: errorTestPage(env)},
		{Path: "/about", Page: aboutPage()},
	}
}

func staticBody(body template.HTML) render.PageFunc {
	return func(context.Context, *render.Tree) (template.HTML, error) {
		return body, nil
	}
}

func homePage(env *publicenv.Env) render.Page {
	return render.Page{
		Title: "Home",
		Render: func(_ context.Context, t *render.Tree) (template.HTML, error) {
			return "<h1>server Home....</h1>" + t.Defer("", printEnvAsync(env)), nil
		},
	}
}

func printEnvAsync(env *publicenv.Env) render.SectionFunc {
	return func(ctx context.Context, _ *render.Tree) (template.HTML, error) {
		snapshot, err := env.ReadAsync(ctx)
		if err != nil {
			return "", err
		}
		b, err := json.Marshal(snapshot)
		if err != nil {
			return "", err
		}
		return `<div id="` + envOutputID + `">` + template.HTML(template.HTMLEscapeString(string(b))) + `</div>`, nil
	}
}

const wasmLoader = `const go=new Go();WebAssembly.instantiateStreaming(fetch("/static/client.wasm"),go.importObject).then(function(r){go.run(r.instance)})`

func clientTestPage(withWasm bool) render.Page {
	return render.Page{
		Title: "Client test",
		Render: func(ctx context.Context, t *render.Tree) (template.HTML, error) {
			publicenv.Connection(ctx)

			nonce := nonceAttr(t.Nonce())
			body := template.HTML(`<div>hello</div><pre id="client-env"></pre>`) +
				`<script` + nonce + `>document.getElementById("client-env").textContent=JSON.stringify(window.` +
				publicenv.GlobalName + `)</script>`
			if withWasm {
				body += `<pre id="wasm-env"></pre><script src="/static/wasm_exec.js"` + nonce + `></script><script` + nonce + `>` + wasmLoader + `</script>`
			}
			return body, nil
		},
	}
}

func loadingTestPage(delay time.Duration) render.Page {
	return render.Page{
		Title: "Loading test",
		Render: func(_ context.Context, t *render.Tree) (template.HTML, error) {
			return t.Defer("<p>Loading...</p>", func(ctx context.Context, _ *render.Tree) (template.HTML, error) {
				if err := sleep(ctx, delay); err != nil {
					return "", err
				}
				return "<div><h1>Loading Test</h1></div>", nil
			}), nil
		},
	}
}

func notFoundTestPage() render.Page {
	return render.Page{
		Title: "Not found test",
		Render: func(ctx context.Context, _ *render.Tree) (template.HTML, error) {
			if err := sleep(ctx, 100*time.Millisecond); err != nil {
				return "", err
			}
			return "", render.ErrNotFound
		},
	}
}

func errorTestPage(env *publicenv.Env) render.Page {
	return render.Page{
		Title: "Error test",
		Render: func(_ context.Context, t *render.Tree) (template.HTML, error) {
			if env.Phase() != publicenv.PhaseBuild {
				return "", errTestPage
			}
			return "<div><div>This will not be rendered</div>" +
				t.Defer("", func(ctx context.Context, _ *render.Tree) (template.HTML, error) {
					if err := sleep(ctx, 200*time.Millisecond); err != nil {
						return "", err
					}
					return "<div>Test Component</div>", nil
				}) + "</div>", nil
		},
	}
}

// missingPage renders the not-found document for unknown paths.
var missingPage = render.Page{
	Render: func(context.Context, *render.Tree) (template.HTML, error) {
		return "", render.ErrNotFound
	},
}

func aboutPage() render.Page {
	return render.Page{
		Title:  "About",
		Render: staticBody(`<h1>About</h1><p>This page does not read the public env.</p>`),
	}
}

func nonceAttr(nonce string) template.HTML {
	if nonce == "" {
		return ""
	}
	return template.HTML(` nonce="` + template.HTMLEscapeString(nonce) + `"`)
}

func sleep(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
