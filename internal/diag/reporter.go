package diag

import "drift/internal/source"

// Reporter — минимальный контракт получения диагностик от фаз.
// Реализации: BagReporter (кладёт в Bag), NopReporter.
type Reporter interface {
	Report(code Code, sev Severity, primary source.Span, msg string)
}

// BagReporter — адаптер, который пишет в *Bag.
type BagReporter struct{ Bag *Bag }

func (r BagReporter) Report(code Code, sev Severity, primary source.Span, msg string) {
	if r.Bag == nil {
		return
	}
	r.Bag.Add(Diagnostic{
		Severity: sev, Code: code, Message: msg, Primary: primary,
	})
}

// NopReporter drops every diagnostic.
type NopReporter struct{}

func (NopReporter) Report(Code, Severity, source.Span, string) {}
