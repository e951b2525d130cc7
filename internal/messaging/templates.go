package messaging

import "fmt"

// The practice writes to patients in Brazilian Portuguese; prompts and the
// deterministic fallbacks below keep that voice.

// ConfirmationPrompt builds the prompt for a booking confirmation message.
func ConfirmationPrompt(clientName, date, timeOfDay, meetLink string) string {
	return fmt.Sprintf(
		"Escreva uma mensagem de confirmação de consulta nutricional para o paciente %s. "+
			"Data: %s às %s. "+
			"Link da sessão: %s. "+
			"A profissional é Karina, Nutricionista Clínica e Comportamental. "+
			"A mensagem deve ser profissional e motivadora, lembrando que o processo de saúde é constante.",
		clientName, date, timeOfDay, meetLink,
	)
}

// ConfirmationFallback is the fixed confirmation text used when generation fails.
func ConfirmationFallback(clientName, date, timeOfDay, meetLink string) string {
	return fmt.Sprintf(
		"Olá %s, sua consulta com a Nutri Karina está confirmada para %s às %s. Link: %s. Até lá!",
		clientName, date, timeOfDay, meetLink,
	)
}

// RetentionPrompt builds the prompt for a no-show retention message.
func RetentionPrompt(clientName, lastSession string) string {
	if lastSession == "" {
		lastSession = "algum tempo"
	}
	return fmt.Sprintf(
		"Escreva uma mensagem curta, acolhedora e profissional para o WhatsApp de um paciente de "+
			"nutrição chamado %s que não comparece a uma consulta desde %s. "+
			"O objetivo é demonstrar preocupação com o processo dele e oferecer um novo horário de forma gentil. "+
			"A profissional é Karina, Nutricionista Clínica e Comportamental. "+
			"Mantenha o tom encorajador e sem julgamentos.",
		clientName, lastSession,
	)
}

// RetentionFallback is the fixed retention text used when generation fails.
func RetentionFallback(clientName string) string {
	return fmt.Sprintf(
		"Olá %s, como você está? Notei que faz um tempo que não conversamos sobre sua alimentação. "+
			"Gostaria de saber se está tudo bem e se quer retomar nosso acompanhamento. Abraços, Karina.",
		clientName,
	)
}
