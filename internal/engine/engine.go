package engine

import (
	"io"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/emtp-protocol/emtp/internal/field"
	"github.com/emtp-protocol/emtp/internal/keyring"
	"github.com/emtp-protocol/emtp/internal/token"
	"github.com/emtp-protocol/emtp/internal/tuple"
)

// Engine derives ephemeral match tokens from raw identifier records.
//
// An Engine is immutable after construction and safe for concurrent
// use. All configuration that can change the produced variant or tuple
// sets lives here, fixed at construction, so one engine instance is one
// deterministic function.
type Engine struct {
	countryCode string
	partialDOB  bool
	includeWeak bool
	phoneLast7  bool
	nicknames   field.NicknameProvider
	log         *slog.Logger
}

// Option configures an Engine at construction.
type Option func(*Engine)

// WithCountryCode sets the country code assumed for bare 10-digit
// phone numbers. Default "1".
func WithCountryCode(cc string) Option {
	return func(e *Engine) { e.countryCode = cc }
}

// WithPartialDOB accepts YYYY and YYYY-MM dates of birth. Tuples built
// from them are weak and still need WithWeakTuples to be emitted.
func WithPartialDOB() Option {
	return func(e *Engine) { e.partialDOB = true }
}

// WithWeakTuples emits tuples built without a full DOB. Weak tuples
// carry elevated false-positive risk; off by default.
func WithWeakTuples() Option {
	return func(e *Engine) { e.includeWeak = true }
}

// WithPhoneLast7 enables the high-collision PHONE_LAST7 variant.
func WithPhoneLast7() Option {
	return func(e *Engine) { e.phoneLast7 = true }
}

// WithNicknames plugs in a nickname expansion strategy. The base
// variant catalogue is unchanged; a provider only adds variants.
func WithNicknames(p field.NicknameProvider) Option {
	return func(e *Engine) { e.nicknames = p }
}

// WithLogger sets the diagnostic logger. The engine logs derivation
// shape (counts), never identifier values or key material.
func WithLogger(log *slog.Logger) Option {
	return func(e *Engine) { e.log = log }
}

// New creates an engine with the given options.
func New(opts ...Option) *Engine {
	e := &Engine{
		countryCode: field.DefaultCountryCode,
		log:         slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Expand runs the record through normalization and tuple assembly,
// returning the capped, deterministically ordered tuple list. Derive
// uses it internally; it is exported for callers that need to inspect
// tuples without keys (vector generation, debugging).
func (e *Engine) Expand(rec InputRecord) ([]tuple.Tuple, error) {
	if rec.empty() {
		return nil, &EmptyInputError{Reason: "record has no identifier fields"}
	}
	if rec.FullName == "" && rec.DOB == "" && !e.includeWeak {
		return nil, &EmptyInputError{
			Reason: "full_name or dob required unless weak tuples are enabled",
		}
	}

	var dob field.DOB
	if rec.DOB != "" {
		var err error
		dob, err = field.NormalizeDOB(rec.DOB, e.partialDOB)
		if err != nil {
			return nil, err
		}
	}

	// The four normalizers are independent; fan out and join before
	// the builder.
	var (
		names  field.Set
		phones []string
		addrs  []string
		ids    field.Set
	)
	var g errgroup.Group
	g.Go(func() error {
		names = field.NormalizeName(rec.FullName, e.nicknames)
		return nil
	})
	g.Go(func() error {
		popts := field.PhoneOptions{CountryCode: e.countryCode, EmitLast7: e.phoneLast7}
		for _, p := range rec.Phones {
			phones = append(phones, field.NormalizePhone(p, popts).Values()...)
		}
		return nil
	})
	g.Go(func() error {
		for _, a := range rec.Addresses {
			addrs = append(addrs, field.NormalizeAddress(a.structured()).Values()...)
		}
		return nil
	})
	g.Go(func() error {
		ids = field.NormalizeIDFragments(rec.IDNumbers)
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	tuples := tuple.Build(tuple.Inputs{
		Name:    names.Values(),
		DOB:     dob.Canonical,
		DOBWeak: dob.Weak,
		Phone:   phones,
		Addr:    addrs,
		ID:      ids.Values(),
	}, e.includeWeak)

	e.log.Debug("record expanded",
		"name_variants", len(names),
		"phone_variants", len(phones),
		"addr_variants", len(addrs),
		"id_variants", len(ids),
		"tuples", len(tuples),
	)
	return tuples, nil
}

// Derive computes the token set for one record under the supplied
// active keys. The keys are used as given; selection against a manifest
// belongs to DeriveAt or an upstream keyring.Selector.
//
// A usable record can still produce an empty set when the current
// options exclude everything it offers: a name-only record, or one
// whose only DOB is partial, yields no tuples while weak output is
// disabled. That is a valid result, not an error; EMPTY_INPUT covers
// only records with no identifier at all, or with neither name nor DOB
// while weak output is disabled. Callers that must distinguish an
// option-starved record from a genuine zero overlap can inspect Expand
// directly.
func (e *Engine) Derive(rec InputRecord, keys []keyring.Entry) (token.Set, error) {
	if len(keys) == 0 {
		return token.Set{}, &keyring.NoActiveKeysError{}
	}

	tuples, err := e.Expand(rec)
	if err != nil {
		return token.Set{}, err
	}

	rendered := make([]string, len(tuples))
	for i, t := range tuples {
		rendered[i] = t.Render()
	}

	tkeys := make([]token.Key, len(keys))
	for i, k := range keys {
		tkeys[i] = token.Key{ID: k.KID, Secret: k.Secret}
	}

	set := token.Derive(rendered, tkeys)
	e.log.Debug("tokens derived", "tuples", len(rendered), "keys", len(keys), "tokens", len(set.Tokens))
	return set, nil
}

// DeriveAt selects the keys active at now from manifest, then derives.
// It fails with NO_ACTIVE_KEYS when no key window contains now; there
// is no fallback that makes sense for token generation.
func (e *Engine) DeriveAt(rec InputRecord, manifest []keyring.Entry, now time.Time) (token.Set, error) {
	keys, err := keyring.ActiveKeys(manifest, now)
	if err != nil {
		return token.Set{}, err
	}
	return e.Derive(rec, keys)
}
