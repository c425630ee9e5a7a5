package pwl

import (
	"fmt"
	"log"
	"os"
	"time"
)

// maxErrorsDefault is the fuzzy-search error budget Suggest falls back
// to when it has no baseline to narrow against; maxSuggestions caps how
// many results Suggest ever returns.
const (
	maxErrorsDefault = 3
	maxSuggestions   = 15
)

// PWL is a Personal Word List: an in-memory trie of known words,
// optionally backed by a flat text file that survives across process
// lifetimes. The zero value is not usable; construct one with New or
// Open.
type PWL struct {
	t             trie
	originalForms map[string]string // normalized key -> first original-cased form seen
	path          string
	lastMod       time.Time
	lock          *fileLock
	logger        *log.Logger
}

// New returns an empty PWL with no backing file.
func New() *PWL {
	return &PWL{
		originalForms: make(map[string]string),
		lock:          &fileLock{},
		logger:        log.New(os.Stdout, "INFO: ", log.Ldate|log.Ltime),
	}
}

// Open returns a PWL bound to path, creating the file if it does not
// already exist. It fails with ErrIoUnavailable if the file can't be
// created or opened.
func Open(path string) (*PWL, error) {
	if err := ensureFile(path); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrIoUnavailable, err)
	}
	p := New()
	p.path = path
	p.refresh()
	return p, nil
}

// Close releases resources held by p. Under Go's garbage collector there
// is no manual memory to free; Close exists so callers used to an
// open/close lifecycle have a natural place to call.
func (p *PWL) Close() error {
	return nil
}

// Check reports whether word is known. It tries the word's NFD form
// first; if that's absent and the word is title-case, it also tries the
// lowercased form, and if the word is all-caps, it tries both the
// lowercased and the title-cased forms.
func (p *PWL) Check(word string) bool {
	if word == "" {
		return false
	}
	p.refresh()
	nk := normalize(word)
	if p.t.contains(nk) {
		return true
	}
	if isTitleCaseWord(nk) {
		if p.t.contains(normalize(foldLower(nk))) {
			return true
		}
	}
	if isAllCaps(nk) {
		if p.t.contains(normalize(foldLower(nk))) {
			return true
		}
		if p.t.contains(normalize(toTitleCase(nk))) {
			return true
		}
	}
	return false
}

// Suggest returns up to maxSuggestions known words that resemble word,
// ranked by ascending edit distance (ties keep emission order). baseline
// is an optional list of suggestions from other providers; when given,
// the search radius is capped at the best edit distance among them
// (never more than maxErrorsDefault).
func (p *PWL) Suggest(word string, baseline []string) []string {
	if word == "" {
		return nil
	}
	nk := normalize(word)
	maxDist := maxErrorsDefault
	if len(baseline) > 0 {
		nkRunes := runeSlice(nk)
		best := maxErrorsDefault
		for _, b := range baseline {
			if d := editDistance(runeSlice(normalize(b)), nkRunes); d < best {
				best = d
			}
		}
		maxDist = best
	}

	p.refresh()

	query := foldLower(nk)
	var list []ranked
	enumerate(p.t.root, query, maxDist, modeFold, func(m match) bool {
		list = rankInsert(list, m, maxSuggestions)
		return true
	})

	queryIsTitle := isTitleCaseWord(nk)
	queryIsAllCaps := isAllCaps(nk)
	results := make([]string, 0, len(list))
	for _, r := range list {
		orig := r.word
		if o, ok := p.originalForms[r.word]; ok {
			orig = o
		}
		switch {
		case queryIsTitle:
			orig = toTitleCase(orig)
		case queryIsAllCaps && !isAllCaps(orig):
			orig = foldUpper(orig)
		}
		results = append(results, orig)
	}
	return results
}

// Add inserts word, recording its original casing (first form seen
// wins) and appending it to the backing file if one is bound. Adding a
// word already present is a no-op on the file: appendWord only runs the
// first time nk is seen, so adding the same word twice never grows the
// file. A failing append leaves the in-memory trie as already updated
// rather than rolling it back.
func (p *PWL) Add(word string) error {
	if word == "" {
		return nil
	}
	p.refresh()
	nk := normalize(word)
	alreadyKnown := p.t.contains(nk)
	if _, ok := p.originalForms[nk]; !ok {
		p.originalForms[nk] = word
	}
	p.t.insert(nk)

	if p.path == "" || alreadyKnown {
		return nil
	}
	p.lock.Lock()
	defer p.lock.Unlock()
	if err := appendWord(p.path, word); err != nil {
		p.logger.Printf("pwl: append to %s failed: %v", p.path, err)
		return nil
	}
	return p.refreshModTime()
}

// Remove deletes word if Check finds it present under any of the casing
// fallbacks Check itself applies, then (if anything concrete was removed
// from either the original-forms map or the trie under word's own exact
// NFD form) rewrites the backing file dropping whole-line occurrences of
// the exact original word. A word that Check can't find at all performs
// no I/O at all, so Remove never grows the file.
func (p *PWL) Remove(word string) error {
	if word == "" {
		return nil
	}
	if !p.Check(word) {
		return nil
	}
	nk := normalize(word)
	removedForm := false
	if _, ok := p.originalForms[nk]; ok {
		delete(p.originalForms, nk)
		removedForm = true
	}
	removedWord := p.t.contains(nk)
	if removedWord {
		p.t.remove(nk)
	}
	if !removedForm && !removedWord {
		return nil
	}

	if p.path == "" {
		return nil
	}
	p.lock.Lock()
	defer p.lock.Unlock()
	if err := rewriteWithout(p.path, word); err != nil {
		p.logger.Printf("pwl: rewrite of %s failed: %v", p.path, err)
		return nil
	}
	return p.refreshModTime()
}

// refresh reloads the backing file into the trie and original-forms map
// whenever its modification time has moved on since the last load. A
// file that has gone missing or unreadable is logged and otherwise
// ignored: only Open's initial file creation is a hard failure; every
// later operation tolerates the backing file disappearing out from
// under it.
func (p *PWL) refresh() {
	if p.path == "" {
		return
	}
	info, err := os.Stat(p.path)
	if err != nil {
		p.logger.Printf("pwl: stat %s: %v", p.path, err)
		return
	}
	if info.ModTime().Equal(p.lastMod) {
		return
	}

	p.lock.Lock()
	defer p.lock.Unlock()

	words, err := loadWords(p.path, p.logger)
	if err != nil {
		p.logger.Printf("pwl: load %s: %v", p.path, err)
		return
	}
	p.t = trie{}
	p.originalForms = make(map[string]string)
	for _, w := range words {
		nk := normalize(w)
		if _, ok := p.originalForms[nk]; !ok {
			p.originalForms[nk] = w
		}
		p.t.insert(nk)
	}
	p.lastMod = info.ModTime()
}

// refreshModTime records the backing file's current modification time
// after a write this process just made, so the next refresh finds
// nothing new to reload.
func (p *PWL) refreshModTime() error {
	info, err := os.Stat(p.path)
	if err != nil {
		return err
	}
	p.lastMod = info.ModTime()
	return nil
}

// ranked is one entry of Suggest's bounded, ascending-error-sorted
// result list.
type ranked struct {
	word   string
	errors int
}

// rankInsert keeps list sorted by ascending error count (ties in
// insertion order), replaces a duplicate word only if the new match is
// at least as good, and otherwise inserts in order and caps the list at
// capN entries.
func rankInsert(list []ranked, m match, capN int) []ranked {
	for i, r := range list {
		if r.word == m.word {
			if m.errors >= r.errors {
				return list
			}
			list = append(list[:i], list[i+1:]...)
			break
		}
	}
	at := len(list)
	for i, r := range list {
		if m.errors < r.errors {
			at = i
			break
		}
	}
	list = append(list, ranked{})
	copy(list[at+1:], list[at:])
	list[at] = ranked{word: m.word, errors: m.errors}
	if len(list) > capN {
		list = list[:capN]
	}
	return list
}
