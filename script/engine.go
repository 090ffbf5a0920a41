// Package script builds scenes from Lisp source. Each evaluation runs in a
// fresh zygomys sandbox whose builtins add nodes to a graph.Scene.
package script

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"sync"
	"time"

	zygo "github.com/glycerine/zygomys/zygo"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/phil-mansfield/athena/graph"
)

// EvalTimeout is the default limit for a single evaluation.
const EvalTimeout = 5 * time.Second

// EvalError is a problem with the user's source: a parse error, a runtime
// error or an invalid scene.
type EvalError struct {
	Line    int
	Message string
}

func (e EvalError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("line %d: %s", e.Line, e.Message)
	}
	return e.Message
}

// Engine evaluates scripts. It is safe for concurrent use; only the result of
// the most recent call to Evaluate is returned.
type Engine struct {
	Timeout time.Duration

	mu         sync.Mutex
	generation uint64
}

func NewEngine() *Engine {
	return &Engine{Timeout: EvalTimeout}
}

type evalResult struct {
	scene  *graph.Scene
	errors []EvalError
	err    error
}

// Evaluate runs source and returns the scene it built.
//
// Errors in the source come back as EvalErrors with a nil scene. The final
// error is reserved for failures of the engine itself: timeouts, panics and
// superseded evaluations.
func (e *Engine) Evaluate(source string) (*graph.Scene, []EvalError, error) {
	e.mu.Lock()
	e.generation++
	gen := e.generation
	e.mu.Unlock()

	// Closing done makes the next builtin call fail, which ends an abandoned
	// evaluation. A loop that never calls a builtin runs until it returns.
	done := make(chan struct{})
	defer close(done)

	ch := make(chan evalResult, 1)
	go func() {
		defer func() {
			if r := recover(); r != nil {
				ch <- evalResult{err: errors.Errorf("panic during evaluation: %v", r)}
			}
		}()
		s, evalErrs, err := evaluate(source, done)
		ch <- evalResult{s, evalErrs, err}
	}()

	return e.wait(ch, gen)
}

// wait returns the result sent on ch, or an error once the timeout passes or
// a newer evaluation has started.
func (e *Engine) wait(ch <-chan evalResult, gen uint64) (*graph.Scene, []EvalError, error) {
	timeout := e.Timeout
	if timeout <= 0 {
		timeout = EvalTimeout
	}
	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case res := <-ch:
		e.mu.Lock()
		current := e.generation
		e.mu.Unlock()
		if gen != current {
			return nil, nil, errors.New("evaluation superseded by newer request")
		}
		return res.scene, res.errors, res.err
	case <-timer.C:
		return nil, nil, errors.Errorf("evaluation timed out after %s", timeout)
	}
}

func evaluate(source string, done <-chan struct{}) (*graph.Scene, []EvalError, error) {
	if strings.TrimSpace(source) == "" {
		return graph.New(), nil, nil
	}

	env := zygo.NewZlispSandbox()
	defer env.Stop()

	b := newBuilder(done)
	b.register(env)

	if err := env.LoadString(preprocess(source)); err != nil {
		return nil, parseError(err), nil
	}
	if _, err := env.Run(); err != nil {
		return nil, parseError(err), nil
	}

	if _, err := b.scene.Validate(); err != nil {
		return nil, []EvalError{{Message: err.Error()}}, nil
	}
	logrus.WithField("nodes", b.scene.NodeCount()).Debug("script evaluated")
	return b.scene, nil, nil
}

var (
	lineLong  = regexp.MustCompile(`(?i)(?:error )?on line (\d+):\s*(.*)`)
	lineShort = regexp.MustCompile(`(?i)^line (\d+):\s*(.*)`)
)

// parseError extracts the line number zygomys embeds in its messages.
func parseError(err error) []EvalError {
	msg := err.Error()
	for _, re := range []*regexp.Regexp{lineLong, lineShort} {
		if m := re.FindStringSubmatch(msg); m != nil {
			line, _ := strconv.Atoi(m[1])
			return []EvalError{{Line: line, Message: strings.TrimSpace(m[2])}}
		}
	}
	return []EvalError{{Message: strings.TrimSpace(msg)}}
}

// preprocess rewrites the surface syntax zygomys does not accept: ; comments
// become //, :keyword becomes the string "__kw_keyword", and kebab-case
// identifiers become snake_case. Strings are left alone.
func preprocess(source string) string {
	in := []byte(source)
	out := make([]byte, 0, len(in)+len(in)/4)
	for i := 0; i < len(in); i++ {
		c := in[i]
		switch {
		case c == '"':
			j := i + 1
			for j < len(in) && in[j] != '"' {
				if in[j] == '\\' {
					j++
				}
				j++
			}
			j = min(j, len(in)-1)
			out = append(out, in[i:j+1]...)
			i = j
		case c == ';':
			out = append(out, '/', '/')
			for i+1 < len(in) && in[i+1] == ';' {
				i++
			}
			for i+1 < len(in) && in[i+1] != '\n' {
				i++
				out = append(out, in[i])
			}
		case c == ':' && i+1 < len(in) && isLetter(in[i+1]):
			j := i + 1
			for j < len(in) && (isIdent(in[j]) || in[j] == '-') {
				j++
			}
			out = append(out, '"')
			out = append(out, kwPrefix...)
			out = append(out, in[i+1:j]...)
			out = append(out, '"')
			i = j - 1
		case c == '-' && i > 0 && i+1 < len(in) && isIdent(in[i-1]) && isLetter(in[i+1]):
			out = append(out, '_')
		default:
			out = append(out, c)
		}
	}
	return string(out)
}

func isLetter(c byte) bool { return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') }

func isIdent(c byte) bool { return isLetter(c) || (c >= '0' && c <= '9') || c == '_' }
