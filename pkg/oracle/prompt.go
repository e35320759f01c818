package oracle

import (
	"encoding/json"
	"fmt"
)

const advicePersona = `Agis comme l'Oracle d'Akhet, un coach de vie expert en sagesse ancienne et stratégie moderne.
Analyse les données suivantes de l'utilisateur pour l'année 2026 :
%s

Donne un conseil stratégique, une mise en garde si nécessaire, et un mot d'encouragement.
Utilise un ton solennel mais motivant, parsemé de références à l'Égypte antique (Maât, le Nil, l'Horizon).
Sois précis sur les chiffres si mentionnés.`

func advicePrompt(data any) (string, error) {
	raw, err := json.Marshal(data)
	if err != nil {
		return "", fmt.Errorf("encode dashboard data: %w", err)
	}
	return fmt.Sprintf(advicePersona, raw), nil
}

func bookByISBNPrompt(isbn string) string {
	return fmt.Sprintf(`Recherche les détails précis du livre avec l'ISBN : %s.
Retourne UNIQUEMENT un objet JSON avec les champs "title", "author", "coverUrl", "isbn" et "found" (booléen).
"found" doit être true seulement si le livre a été identifié avec certitude.
L'URL de l'image doit être fonctionnelle (OpenLibrary ou Google Books).`, isbn)
}

func bookByQueryPrompt(query string) string {
	return fmt.Sprintf(`Trouve le livre correspondant le mieux à la recherche : %q.
Cherche le titre exact, l'auteur principal et son numéro ISBN-13.
Retourne UNIQUEMENT un objet JSON avec les champs "title", "author", "coverUrl", "isbn" et "found" (booléen).
L'URL de l'image doit être de haute qualité (Google Books, Amazon ou OpenLibrary).`, query)
}

const isbnFromImagePrompt = `Analyse cette image de couverture ou de quatrième de couverture de livre. ` +
	`Localise le code-barres ou le texte ISBN. Trouve spécifiquement le numéro ISBN-13 (souvent 978... ou 979...). ` +
	`Ignore les prix et autres codes. Retourne UNIQUEMENT les 13 chiffres sans espaces ni tirets. ` +
	`Si l'ISBN n'est pas clairement lisible ou absent, réponds par 'null'.`

func visualsPrompt(country string) string {
	return fmt.Sprintf(`Donne moi le code pays ISO (2 lettres), une URL d'image iconique et les coordonnées GPS centrales (lat/lng) pour le pays : %s.
Retourne UNIQUEMENT un objet JSON avec les champs "code", "imageUrl", "lat" et "lng".`, country)
}
