package eval

import "github.com/wisplang/wisp/internal/object"

// prelude is preloaded into every root environment, evaluated as if
// entered by a user. Prelude failure is a fatal error at interpreter
// start-up, so NewRootEnv panics rather than returning an error: a
// broken prelude is a build defect, not a recoverable runtime condition.
const prelude = `
(define (map f l)    (if (null? l) '() (cons (f (car l)) (map f (cdr l)))))
(define (filter f l) (if (null? l) '() (if (f (car l)) (cons (car l) (filter f (cdr l))) (filter f (cdr l)))))
(define (append a b) (if (null? a) b (cons (car a) (append (cdr a) b))))
(define (not x)      (if x #f #t))
(define (flat l)     (if (null? l) '() (append (car l) (flat (cdr l)))))
(define (cadr x)     (car (cdr x)))
`

// NewRootEnv builds a fresh root environment with every built-in
// primitive and the prelude already bound.
func NewRootEnv() *object.Environment {
	env := object.NewGlobal()
	registerPrimitives(env)
	if _, err := EvalSource(prelude, env); err != nil {
		panic("wisp: prelude failed to evaluate: " + err.Error())
	}
	return env
}
