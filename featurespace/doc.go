// Package featurespace builds, per feature, the extended domain a region
// search operates over: the sorted split thresholds used anywhere in an
// ensemble, bracketed by external or auto-computed limits.
//
// For feature i with m_i domain points there are m_i*(m_i-1)/2 elementary
// intervals; Space exposes both the per-feature domain and these derived
// counts, used only for progress/stratification, never for correctness.
//
// Space.DMin/DMax intentionally return the natural minimum/maximum of a
// feature's domain. A historical variant of this metadata (see DESIGN.md)
// returned them swapped; this port treats the method *names* as
// authoritative, per the source specification's design note.
package featurespace
