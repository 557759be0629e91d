package assistant

// prompts.go holds every fixed text the engine can produce: the canned
// triage replies and the system directive sent to the AI client. The
// texts are part of the engine's contract; tests assert against them.

const (
	// emptyReply is returned for empty input instead of running the
	// pattern table.
	emptyReply = "I didn't get your message. Please tell me your symptom or question. " +
		"If this is an emergency, call your local emergency number immediately."

	// emergencyReplyFormat quotes the matched emergency term verbatim.
	emergencyReplyFormat = "If you or someone else is experiencing %q, this may be an emergency. " +
		"Please call your local emergency services (e.g., 911) right away. " +
		"I'm not a substitute for professional medical care."

	// greetingReplyFormat carries the assistant identity.
	greetingReplyFormat = "Hello — I'm %s. I can help with general health questions and symptom triage. " +
		"How can I help you today?"

	feverReply = "A fever can be caused by infections. If the fever is high (e.g., above 39°C / 102°F) or persistent, " +
		"consider contacting a healthcare provider. Stay hydrated and rest. If you have concerns about a child, elderly person, " +
		"or someone with underlying conditions, seek medical advice sooner."

	coldReply = "Coughs and colds are commonly viral. Monitor symptoms for worsening (high fever, trouble breathing, confusion). " +
		"If symptoms worsen or you are high-risk, contact a clinician. Consider testing for common infections if advised."

	headacheReply = "Most headaches are benign. Rest, hydration, and over-the-counter pain relief can help. " +
		"Seek urgent care if the headache is sudden and severe, " +
		"or if it's accompanied by fever, neck stiffness, confusion, or weakness."

	medicationReply = "I can provide general information about medications, but I can't give personalized dosing or medical advice. " +
		"Check the medication leaflet and confirm with your prescriber or pharmacist before changing doses."

	appointmentReply = "If you need to see a doctor, contact your primary care clinic or an urgent care center. " +
		"If it's an emergency, call local emergency services. " +
		"If you want, tell me your main symptom and I can help suggest whether to see a clinician soon."

	// defaultReply is the last row of the pattern table.
	defaultReply = "Thanks for your question. I can help with general symptom information and next-step suggestions, " +
		"but I'm not a medical professional. For specific medical advice, please consult your healthcare provider. " +
		"Tell me more about your symptoms or ask a specific question (e.g., \"I have a fever and cough\")."

	// systemPromptFormat is the fixed directive for AI-generated replies.
	// It keeps the model safety-conscious and non-diagnostic, defers
	// emergencies straight to emergency services, and forbids collecting
	// personal identifying information.
	systemPromptFormat = "You are a helpful, safety-conscious health assistant named %s. " +
		"You provide general medical information and triage suggestions, but always include a clear disclaimer that " +
		"you are not a doctor and recommend contacting a healthcare professional for personalized advice. " +
		"If a user describes an emergency (chest pain, severe bleeding, difficulty breathing, unconsciousness), " +
		"advise them to call local emergency services immediately and do not provide further triage. " +
		"Avoid asking for, storing, or processing personally identifiable information."
)
