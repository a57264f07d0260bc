package game

// Outcome is the result of comparing a guess against a drawn value
type Outcome int

const (
	Incorrect Outcome = iota
	Correct
)

func (o Outcome) String() string {
	if o == Correct {
		return "Correct"
	}
	return "Incorrect"
}

// Evaluate returns Correct iff guess equals drawn
func Evaluate(guess, drawn int) Outcome {
	if guess == drawn {
		return Correct
	}
	return Incorrect
}

// Submission is what the player commits for one round
type Submission struct {
	Guess int
	Range Range
}

// Result describes a finished round
type Result struct {
	Range   Range
	Guess   int
	Drawn   int
	Outcome Outcome
}

// Play draws a value from sub.Range with sel and evaluates the guess against it
func Play(sel Selector, sub Submission) Result {
	drawn := sel.Draw(sub.Range)
	return Result{
		Range:   sub.Range,
		Guess:   sub.Guess,
		Drawn:   drawn,
		Outcome: Evaluate(sub.Guess, drawn),
	}
}
