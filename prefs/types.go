// This file is part of Emu6502Console.
//
// Emu6502Console is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Emu6502Console is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Emu6502Console.  If not, see <https://www.gnu.org/licenses/>.

package prefs

import (
	"fmt"
	"strconv"
	"strings"
	"sync/atomic"
)

// Value represents the actual Go preference value.
type Value interface{}

// types supported by the prefs system must implement the pref interface.
type pref interface {
	fmt.Stringer
	Set(value Value) error
	Get() Value
	Reset() error
}

// hooks are embedded in every pref type. the pre hook can veto a new value,
// the post hook is called once the value has been stored. both hooks are
// called even if the value is unchanged.
type hooks struct {
	pre  func(value Value) error
	post func(value Value) error
}

// SetHookPre sets the function to be called before the value is updated. If
// the function returns an error the value is not updated.
func (h *hooks) SetHookPre(f func(value Value) error) {
	h.pre = f
}

// SetHookPost sets the function to be called after the value is updated.
func (h *hooks) SetHookPost(f func(value Value) error) {
	h.post = f
}

func (h *hooks) commit(store *atomic.Value, nv Value) error {
	if h.pre != nil {
		if err := h.pre(nv); err != nil {
			return err
		}
	}
	store.Store(nv)
	if h.post != nil {
		return h.post(nv)
	}
	return nil
}

// Bool implements a boolean type in the prefs system.
type Bool struct {
	hooks
	value atomic.Value // bool
}

func (p *Bool) String() string {
	return fmt.Sprintf("%v", p.Get())
}

// Set new value to Bool type. New value must be of type bool or string. A
// string value of anything other than "true" (case insensitive) will set the
// value to false.
func (p *Bool) Set(v Value) error {
	switch v := v.(type) {
	case bool:
		return p.commit(&p.value, v)
	case string:
		return p.commit(&p.value, strings.EqualFold(strings.TrimSpace(v), "true"))
	}
	return fmt.Errorf("set: cannot convert %T to prefs.Bool", v)
}

// Get returns the raw pref value.
func (p *Bool) Get() Value {
	if v, ok := p.value.Load().(bool); ok {
		return v
	}
	return false
}

// Reset sets the boolean value to false.
func (p *Bool) Reset() error {
	return p.Set(false)
}

// String implements a string type in the prefs system.
type String struct {
	hooks
	value   atomic.Value // string
	options []string
}

func (p *String) String() string {
	if v, ok := p.value.Load().(string); ok {
		return v
	}
	return ""
}

// SetOptions restricts the String to one of the listed values. Values are
// matched without regard to case and are stored as they appear in the list.
// The empty string is always allowed. Calling with no options removes the
// restriction.
func (p *String) SetOptions(options ...string) {
	p.options = options
}

// Set new value to String type. Values of other types are converted with
// the %v verb.
func (p *String) Set(v Value) error {
	nv := strings.TrimSpace(fmt.Sprintf("%v", v))

	if len(p.options) > 0 && nv != "" {
		var found bool
		for _, o := range p.options {
			if strings.EqualFold(o, nv) {
				nv = o
				found = true
				break
			}
		}
		if !found {
			return fmt.Errorf("set: %q is not one of %s", nv, strings.Join(p.options, ", "))
		}
	}

	return p.commit(&p.value, nv)
}

// Get returns the raw pref value.
func (p *String) Get() Value {
	return p.String()
}

// Reset sets the string value to the empty string.
func (p *String) Reset() error {
	return p.Set("")
}

// Int implements an integer type in the prefs system.
type Int struct {
	hooks
	value atomic.Value // int
}

func (p *Int) String() string {
	return fmt.Sprintf("%d", p.Get())
}

// Set new value to Int type. New value can be any integer type or a string.
// Strings are parsed with a base of zero, so hexadecimal can be given with
// the 0x prefix. The $ prefix is also accepted for hexadecimal.
func (p *Int) Set(v Value) error {
	switch v := v.(type) {
	case int:
		return p.commit(&p.value, v)
	case int64:
		return p.commit(&p.value, int(v))
	case int32:
		return p.commit(&p.value, int(v))
	case uint16:
		return p.commit(&p.value, int(v))
	case uint8:
		return p.commit(&p.value, int(v))
	case string:
		s := strings.TrimSpace(v)
		if h, ok := strings.CutPrefix(s, "$"); ok {
			s = "0x" + h
		}
		n, err := strconv.ParseInt(s, 0, 64)
		if err != nil {
			return fmt.Errorf("set: cannot convert %q to prefs.Int: %w", v, err)
		}
		return p.commit(&p.value, int(n))
	}
	return fmt.Errorf("set: cannot convert %T to prefs.Int", v)
}

// Get returns the raw pref value.
func (p *Int) Get() Value {
	if v, ok := p.value.Load().(int); ok {
		return v
	}
	return 0
}

// Reset sets the int value to zero.
func (p *Int) Reset() error {
	return p.Set(0)
}
