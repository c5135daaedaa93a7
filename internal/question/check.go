package question

import (
	"errors"

	"github.com/muurk/formulary/internal/logging"
	"github.com/muurk/formulary/internal/validators"
	"go.uber.org/zap"
)

// TypeChecker knows the registered question types. CheckQuestion returns a
// DefinitionError for an unknown type or for type specific problems such
// as a selection question without choices.
type TypeChecker interface {
	CheckQuestion(q *Question) error
}

// ValidatorResolver builds validator instances from descriptors.
type ValidatorResolver interface {
	Resolve(d validators.Descriptor) (validators.Validator, error)
}

// Check validates a whole question list before anything is rendered and
// replaces validator descriptors with resolved instances. It stops at the
// first problem.
func Check(qs []*Question, types TypeChecker, resolver ValidatorResolver) error {
	seen := make(map[string]bool, len(qs))
	for i, q := range qs {
		if err := checkOne(i, q, seen, types, resolver); err != nil {
			logging.Error("Invalid question definition", zap.Error(err))
			return err
		}
	}
	return nil
}

func checkOne(i int, q *Question, seen map[string]bool, types TypeChecker, resolver ValidatorResolver) error {
	if q == nil {
		return newDefinitionError(ErrTypeInvalidField, i, "", "question is nil", nil)
	}
	if q.Name == "" {
		return newDefinitionError(ErrTypeMissingField, i, "", "You must specify a name for the question", nil)
	}
	if q.Type == "" {
		return newDefinitionError(ErrTypeMissingField, i, q.Name, "You must specify a question type", nil)
	}
	if seen[q.Name] {
		return newDefinitionError(ErrTypeDuplicateName, i, q.Name, "question names must be unique", nil)
	}
	seen[q.Name] = true

	if err := types.CheckQuestion(q); err != nil {
		var de *DefinitionError
		if !errors.As(err, &de) {
			return newDefinitionError(ErrTypeInvalidField, i, q.Name, "rejected by question type", err)
		}
		de.Index = i
		if de.Question == "" {
			de.Question = q.Name
		}
		return de
	}

	for j, v := range q.Validators {
		switch d := v.(type) {
		case nil:
			return newDefinitionError(ErrTypeInvalidValidator, i, q.Name, "nil validator", nil)
		case validators.Descriptor:
			resolved, err := resolver.Resolve(d)
			if err != nil {
				return newDefinitionError(ErrTypeInvalidValidator, i, q.Name, "cannot resolve validator "+d.Name, err)
			}
			q.Validators[j] = resolved
		case *validators.Descriptor:
			resolved, err := resolver.Resolve(*d)
			if err != nil {
				return newDefinitionError(ErrTypeInvalidValidator, i, q.Name, "cannot resolve validator "+d.Name, err)
			}
			q.Validators[j] = resolved
		}
	}
	return nil
}
