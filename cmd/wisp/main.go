// Command wisp is a minimal windowed browser shell over the wisp engine,
// grounded on cmd/l14/main.go's Fyne window/URL-bar/canvas arrangement.
package main

import (
	"fmt"
	"image"
	"log/slog"
	"os"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"wisp/pkg/host"
	"wisp/pkg/resource"
	"wisp/pkg/script"
	"wisp/pkg/text"
)

const (
	windowWidth  = 1024
	windowHeight = 768
	canvasHeight = 700
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	a := app.New()
	w := a.NewWindow("wisp browser")
	w.Resize(fyne.NewSize(windowWidth, windowHeight))

	target := image.NewRGBA(image.Rect(0, 0, windowWidth, canvasHeight))
	canvasImg := canvas.NewImageFromImage(target)
	canvasImg.FillMode = canvas.ImageFillOriginal

	status := widget.NewLabel("Enter a URL and press Enter")
	nav := host.NewNavigator()

	urlEntry := widget.NewEntry()
	urlEntry.SetPlaceHolder("https://example.com")
	urlEntry.OnSubmitted = func(url string) {
		status.SetText("Loading " + url + "...")
		go func() {
			fetcher := resource.NewFetcher(url)
			body, err := fetcher.FetchText(url)
			if err != nil {
				status.SetText("Error: " + err.Error())
				return
			}

			renderTarget := image.NewRGBA(image.Rect(0, 0, windowWidth, canvasHeight))
			renderer := resource.NewRenderer(fetcher, text.NewProvider(nil), logger)
			renderer.SetScriptEngine(script.New(logger))
			if err := renderer.Render(body, renderTarget); err != nil {
				status.SetText("Render error: " + err.Error())
				return
			}

			canvasImg.Image = renderTarget
			canvasImg.Refresh()
			status.SetText(url)
			w.SetTitle(fmt.Sprintf("wisp — %s", url))
			nav.Push(url)
		}()
	}

	topBar := container.NewBorder(nil, nil, nil, nil, urlEntry)
	content := container.NewBorder(topBar, status, nil, nil, canvasImg)
	w.SetContent(content)

	w.Canvas().Focus(urlEntry)

	w.ShowAndRun()
}
