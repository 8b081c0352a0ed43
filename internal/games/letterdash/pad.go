package letterdash

import "math/rand"

// letterPicker draws targets and pad letters from a fixed alphabet.
type letterPicker struct {
	letters []rune
	rng     *rand.Rand
}

func newLetterPicker(alphabet string, rng *rand.Rand) *letterPicker {
	return &letterPicker{letters: []rune(alphabet), rng: rng}
}

// Next returns a uniformly random letter that is not except.
// Pass 0 to allow any letter.
func (p *letterPicker) Next(except rune) rune {
	skip := -1
	for i, r := range p.letters {
		if r == except {
			skip = i
			break
		}
	}
	if skip < 0 {
		return p.letters[p.rng.Intn(len(p.letters))]
	}
	i := p.rng.Intn(len(p.letters) - 1)
	if i >= skip {
		i++
	}
	return p.letters[i]
}

// Pad returns up to size distinct letters including target, shuffled.
func (p *letterPicker) Pad(target rune, size int) []rune {
	if size > len(p.letters) {
		size = len(p.letters)
	}
	if size < 1 {
		size = 1
	}

	pad := []rune{target}

	// Draw the rest from the alphabet without the target.
	pool := make([]rune, 0, len(p.letters))
	for _, r := range p.letters {
		if r != target {
			pool = append(pool, r)
		}
	}
	p.rng.Shuffle(len(pool), func(i, j int) { pool[i], pool[j] = pool[j], pool[i] })
	for _, r := range pool {
		if len(pad) >= size {
			break
		}
		pad = append(pad, r)
	}

	p.rng.Shuffle(len(pad), func(i, j int) { pad[i], pad[j] = pad[j], pad[i] })
	return pad
}
