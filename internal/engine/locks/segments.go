package locks

import "github.com/KirkDiggler/oripheon-api/internal/entities"

// segmentLens pins one part of the primary name. It only writes when both
// forms carry the part: locking a surname onto a mononym leaves the mononym
// alone rather than changing its topology. Lock nameMode alongside to force
// the shape.
func segmentLens(p Path) lens {
	return func(dst, src *entities.Avatar) {
		value, ok := segmentOf(src.Identity.PrimaryName.Form, p)
		if !ok {
			return
		}
		if form, ok := withSegment(dst.Identity.PrimaryName.Form, p, value); ok {
			dst.Identity.PrimaryName.Form = form
		}
	}
}

// segmentOf reads one name part. Fused mononyms expose none; their first and
// last are provenance of the fused word.
func segmentOf(form entities.NameForm, p Path) (string, bool) {
	switch f := form.(type) {
	case entities.Mononym:
		if p == IdentityPrimaryNameMononym {
			return f.Value, true
		}
	case entities.FirstLast:
		switch p {
		case IdentityPrimaryNameFirst:
			return f.First, true
		case IdentityPrimaryNameLast:
			return f.Last, true
		}
	case entities.FirstMiddleLast:
		switch p {
		case IdentityPrimaryNameFirst:
			return f.First, true
		case IdentityPrimaryNameMiddle:
			return f.Middle, true
		case IdentityPrimaryNameLast:
			return f.Last, true
		}
	}
	return "", false
}

func withSegment(form entities.NameForm, p Path, value string) (entities.NameForm, bool) {
	switch f := form.(type) {
	case entities.Mononym:
		if p == IdentityPrimaryNameMononym {
			f.Value = value
			return f, true
		}
	case entities.FirstLast:
		switch p {
		case IdentityPrimaryNameFirst:
			f.First = value
			return f, true
		case IdentityPrimaryNameLast:
			f.Last = value
			return f, true
		}
	case entities.FirstMiddleLast:
		switch p {
		case IdentityPrimaryNameFirst:
			f.First = value
			return f, true
		case IdentityPrimaryNameMiddle:
			f.Middle = value
			return f, true
		case IdentityPrimaryNameLast:
			f.Last = value
			return f, true
		}
	}
	return form, false
}

var nameSegments = []Path{
	IdentityPrimaryNameFirst,
	IdentityPrimaryNameMiddle,
	IdentityPrimaryNameLast,
	IdentityPrimaryNameMononym,
}
