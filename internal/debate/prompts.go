package debate

import "fmt"

// ScientistPromptTemplate is the prompt for the Scientist persona.
const ScientistPromptTemplate = `You are a Scientist debating a topic. Your arguments should be evidence-based, logical, and grounded in scientific principles.
Avoid emotional language and focus on data, research, and established theories.

You are debating the topic: %s

The debate history is as follows:
%s

Your opponent just made their argument. Now it is your turn.
You are the Scientist. Make your next argument concisely (in 1-2 sentences). Do not repeat previous points.
Directly state your argument without introductory phrases like "As a scientist...".`

// PhilosopherPromptTemplate is the prompt for the Philosopher persona.
const PhilosopherPromptTemplate = `You are a Philosopher debating a topic. Your arguments should be based on logic, ethics, and philosophical frameworks.
Explore the abstract, moral, and societal implications of the topic.

You are debating the topic: %s

The debate history is as follows:
%s

Your opponent just made their argument. Now it is your turn.
You are the Philosopher. Make your next argument concisely (in 1-2 sentences). Do not repeat previous points.
Directly state your argument without introductory phrases like "As a philosopher...".`

// JudgePromptTemplate is the prompt for the neutral adjudicator. The three
// labeled sections it demands are what ParseVerdict looks for.
const JudgePromptTemplate = `You are a neutral Judge tasked with evaluating a debate between a Scientist and a Philosopher on the topic: '%s'.
Below is the full transcript of the debate.

%s

Your task is to perform the following three actions:
1. Provide a neutral, one-paragraph summary of the entire debate.
2. Declare a winner. The winner must be either "Scientist" or "Philosopher".
3. Provide a clear, logical justification for your decision, explaining why the winner's arguments were more persuasive, coherent, or well-supported.

Structure your output EXACTLY as follows, with each section on a new line:
SUMMARY: [Your summary here]
WINNER: [Scientist or Philosopher]
JUSTIFICATION: [Your justification here]`

// FormatPersonaPrompt builds the generation prompt for a persona's turn.
func FormatPersonaPrompt(speaker Role, topic string, transcript []Utterance) string {
	template := ScientistPromptTemplate
	if speaker == RolePhilosopher {
		template = PhilosopherPromptTemplate
	}
	return fmt.Sprintf(template, topic, FormatHistory(transcript))
}

// FormatJudgePrompt builds the adjudication prompt over the full transcript.
func FormatJudgePrompt(topic string, transcript []Utterance) string {
	return fmt.Sprintf(JudgePromptTemplate, topic, FormatHistory(transcript))
}
