package shoppy

import (
	"github.com/BrandonKowalski/shoppy/pkg/shoppy/catalog"
	"github.com/BrandonKowalski/shoppy/pkg/shoppy/locale"
)

// Labels are the translated strings the screens draw.
type Labels struct {
	SplashTitle string
	Filter      string
	GridView    string
	ListView    string
	Empty       string
	Product     string
	Retry       string
	Back        string
	Open        string
	Toggle      string
	FetchError  func(err error) string
}

// LabelsFor builds Labels from a localizer.
func LabelsFor(l *locale.Localizer) Labels {
	return Labels{
		SplashTitle: l.T(locale.SplashTitle),
		Filter:      l.T(locale.Filter),
		GridView:    l.T(locale.GridView),
		ListView:    l.T(locale.ListView),
		Empty:       l.T(locale.Empty),
		Product:     l.T(locale.Product),
		Retry:       l.T(locale.Retry),
		Back:        l.T(locale.Back),
		Open:        l.T(locale.Open),
		Toggle:      l.T(locale.Toggle),
		FetchError:  l.FetchError,
	}
}

// DefaultLabels are the English labels, used when options leave Labels empty.
func DefaultLabels() Labels {
	l, err := locale.New("en")
	if err != nil {
		return Labels{
			SplashTitle: "Shoppy",
			Filter:      "Filter",
			GridView:    "Grid View",
			ListView:    "List View",
			Empty:       "No products",
			Product:     "Product",
			Retry:       "Retry",
			Back:        "Back",
			Open:        "Open",
			Toggle:      "Toggle",
			FetchError:  func(err error) string { return catalog.KindName(err) },
		}
	}
	return LabelsFor(l)
}

func (l Labels) orDefault() Labels {
	if l.FetchError == nil {
		return DefaultLabels()
	}
	return l
}
