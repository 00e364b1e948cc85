package postgres

import (
	"context"

	"vet-clinic/internal/platform/dbx"
)

// deletePets borra las mascotas que devuelve petScope (un SELECT de ids con
// un único parámetro $1) y todo lo que cuelga de ellas, hijos primero.
// Devuelve cuántas mascotas se borraron.
func deletePets(ctx context.Context, tx dbx.DBTX, petScope string, arg int64) (int64, error) {
	appointmentScope := `SELECT id FROM appointments WHERE pet_id IN (` + petScope + `)`
	children := []string{
		`DELETE FROM vaccinations WHERE pet_id IN (` + petScope + `) OR appointment_id IN (` + appointmentScope + `)`,
		`DELETE FROM analyses WHERE appointment_id IN (` + appointmentScope + `)`,
		`DELETE FROM appointments WHERE pet_id IN (` + petScope + `)`,
		`DELETE FROM medicine_takes WHERE pet_id IN (` + petScope + `)`,
	}
	for _, q := range children {
		if _, err := tx.ExecContext(ctx, q, arg); err != nil {
			return 0, translate(err)
		}
	}

	res, err := tx.ExecContext(ctx, `DELETE FROM pets WHERE id IN (`+petScope+`)`, arg)
	if err != nil {
		return 0, translate(err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, translate(err)
	}
	return n, nil
}

// deleteRow borra una fila por id; ErrNotFound si no existía.
func deleteRow(ctx context.Context, tx dbx.DBTX, table string, id int64) error {
	res, err := tx.ExecContext(ctx, `DELETE FROM `+table+` WHERE id = $1`, id)
	if err != nil {
		return translate(err)
	}
	return expectOne(res)
}
