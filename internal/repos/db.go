package repos

import (
	"log"
	"strconv"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

func OpenDB(dsn string) (*sqlx.DB, error) {
	db, err := sqlx.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	if err = db.Ping(); err != nil {
		return nil, err
	}

	if err := ensureSchema(db); err != nil {
		return nil, err
	}
	// Seed the demo catalog if the DB is empty (idempotent)
	if err := seedIfEmpty(db); err != nil {
		return nil, err
	}

	return db, nil
}

func ensureSchema(db *sqlx.DB) error {
	schema := `
PRAGMA foreign_keys = ON;

-- Products
CREATE TABLE IF NOT EXISTS products(
  id TEXT PRIMARY KEY,
  handle TEXT NOT NULL UNIQUE,
  title TEXT NOT NULL,
  description TEXT,
  product_type TEXT NOT NULL,
  vendor TEXT,
  tags_json TEXT,
  status TEXT NOT NULL DEFAULT 'active',
  thumbnail TEXT,
  created_at TEXT DEFAULT CURRENT_TIMESTAMP,
  updated_at TEXT
);
CREATE INDEX IF NOT EXISTS idx_products_status ON products(status);
CREATE INDEX IF NOT EXISTS idx_products_type   ON products(product_type);

-- Product options (Color, Size, ...)
CREATE TABLE IF NOT EXISTS product_options(
  id TEXT PRIMARY KEY,
  product_id TEXT NOT NULL REFERENCES products(id) ON DELETE CASCADE,
  name TEXT NOT NULL,
  position INTEGER NOT NULL DEFAULT 1,
  values_json TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_product_options_product ON product_options(product_id);

-- Product variants
CREATE TABLE IF NOT EXISTS product_variants(
  id TEXT PRIMARY KEY,
  product_id TEXT NOT NULL REFERENCES products(id) ON DELETE CASCADE,
  sku TEXT NOT NULL UNIQUE,
  title TEXT NOT NULL,
  price NUMERIC NOT NULL CHECK (price >= 0),
  compare_at_price NUMERIC,
  attributes_json TEXT NOT NULL,
  image TEXT,
  mockups_json TEXT,
  design_zone_json TEXT,
  print_spec_json TEXT,
  is_default INTEGER NOT NULL DEFAULT 0
);
CREATE INDEX IF NOT EXISTS idx_product_variants_product ON product_variants(product_id);

-- Templates
CREATE TABLE IF NOT EXISTS templates(
  id TEXT PRIMARY KEY,
  name TEXT NOT NULL,
  description TEXT,
  category TEXT,
  thumbnail TEXT,
  layout_json TEXT,
  created_at TEXT DEFAULT CURRENT_TIMESTAMP
);

-- Product <-> template links (many-to-many, at most one default per product)
CREATE TABLE IF NOT EXISTS product_templates(
  id TEXT PRIMARY KEY,
  product_id TEXT NOT NULL REFERENCES products(id) ON DELETE CASCADE,
  template_id TEXT NOT NULL REFERENCES templates(id) ON DELETE CASCADE,
  is_default INTEGER NOT NULL DEFAULT 0,
  position INTEGER NOT NULL DEFAULT 0
);
CREATE INDEX IF NOT EXISTS idx_product_templates_product ON product_templates(product_id);

-- Template fields
CREATE TABLE IF NOT EXISTS template_fields(
  id TEXT PRIMARY KEY,
  template_id TEXT NOT NULL REFERENCES templates(id) ON DELETE CASCADE,
  key TEXT NOT NULL,
  label TEXT NOT NULL,
  description TEXT,
  type TEXT NOT NULL,
  required INTEGER NOT NULL DEFAULT 1,
  config_json TEXT NOT NULL,
  position INTEGER NOT NULL DEFAULT 0,
  is_active INTEGER NOT NULL DEFAULT 1
);
CREATE INDEX IF NOT EXISTS idx_template_fields_template ON template_fields(template_id);

-- Field options (image_select / color_select choices)
CREATE TABLE IF NOT EXISTS field_options(
  id TEXT PRIMARY KEY,
  field_id TEXT NOT NULL REFERENCES template_fields(id) ON DELETE CASCADE,
  label TEXT,
  image TEXT NOT NULL,
  color_hex TEXT,
  metadata_json TEXT,
  position INTEGER NOT NULL DEFAULT 0,
  is_active INTEGER NOT NULL DEFAULT 1
);
CREATE INDEX IF NOT EXISTS idx_field_options_field ON field_options(field_id);

-- Saved designs
CREATE TABLE IF NOT EXISTS designs(
  id TEXT PRIMARY KEY,
  product_id TEXT NOT NULL REFERENCES products(id),
  variant_id TEXT NOT NULL REFERENCES product_variants(id),
  template_id TEXT NOT NULL REFERENCES templates(id),
  customization_json TEXT NOT NULL,
  preview_thumbnail TEXT,
  preview_full_size TEXT,
  created_at TEXT DEFAULT CURRENT_TIMESTAMP,
  updated_at TEXT
);
CREATE INDEX IF NOT EXISTS idx_designs_product ON designs(product_id);
`
	_, err := db.Exec(schema)
	return err
}

const mugCDN = "https://cms.gossby.com/resource/template/core/image/catalog/campaign/type/preview/mug/11oz"

func seedIfEmpty(db *sqlx.DB) error {
	var n int
	if err := db.Get(&n, `SELECT COUNT(*) FROM products`); err != nil {
		return err
	}
	if n > 0 {
		return nil
	}

	log.Println("[seed] inserting demo catalog (rooster mug)")

	tx := db.MustBegin()
	defer func() { _ = tx.Rollback() }()

	tx.MustExec(`INSERT INTO templates(id,name,description,category,layout_json) VALUES
	  ('tpl_animal_mug','Rooster Collection','Personalized rooster mugs','animal','{"background":"#FFFFFF","staticElements":[]}')`)

	tx.MustExec(`INSERT INTO template_fields(id,template_id,key,label,description,type,required,config_json,position) VALUES
	  ('field_name','tpl_animal_mug','name','Name''s','*Can Be Left Empty*','text_input',0,
	   '{"placeholder":"Enter","maxLength":24,"showCharCount":true}',0),
	  ('field_animal','tpl_animal_mug','animal','Choose An Animal',NULL,'image_select',1,
	   '{"columns":5,"multiple":false,"minSelect":1,"maxSelect":1}',1)`)

	for i := 1; i <= 10; i++ {
		label := "F-CAW-F"
		if i%3 == 0 {
			label = ""
		}
		tx.MustExec(`INSERT INTO field_options(id,field_id,label,image,position)
		  VALUES(?,?,?,?,?)`,
			fmtOptID(i), "field_animal", label, fmtOptImage(i), i-1)
	}

	tx.MustExec(`INSERT INTO products(id,handle,title,description,product_type,vendor,tags_json,status) VALUES
	  ('prod_rooster_mug','rooster-mug','Personalized Rooster Mug',
	   'Funny personalized ceramic mug with rooster designs. Microwave and dishwasher safe.',
	   'mug','craftpress','["mug","rooster","personalized","gift"]','active')`)

	tx.MustExec(`INSERT INTO product_options(id,product_id,name,position,values_json) VALUES
	  ('opt_rooster_mug_color','prod_rooster_mug','Color',1,'["White","Black"]'),
	  ('opt_rooster_mug_size','prod_rooster_mug','Size',2,'["11 oz","15 oz"]')`)

	tx.MustExec(`INSERT INTO product_variants(id,product_id,sku,title,price,compare_at_price,attributes_json,image,design_zone_json,is_default) VALUES
	  ('var_rooster_11oz_white','prod_rooster_mug','ROOSTER-MUG-11-WHT','11 oz / White',14.99,25.99,
	   '{"size":"11 oz","color":"White"}','`+mugCDN+`/white/front.png',
	   '{"width":35,"height":50,"offsetX":8,"offsetY":0}',1),
	  ('var_rooster_11oz_black','prod_rooster_mug','ROOSTER-MUG-11-BLK','11 oz / Black',14.99,25.99,
	   '{"size":"11 oz","color":"Black"}','`+mugCDN+`/black/front/background.png',
	   '{"width":35,"height":50,"offsetX":8,"offsetY":0}',0),
	  ('var_rooster_15oz_white','prod_rooster_mug','ROOSTER-MUG-15-WHT','15 oz / White',16.99,27.99,
	   '{"size":"15 oz","color":"White"}','`+mugCDN+`/white/front.png',
	   '{"width":38,"height":55,"offsetX":8,"offsetY":0}',0),
	  ('var_rooster_15oz_black','prod_rooster_mug','ROOSTER-MUG-15-BLK','15 oz / Black',16.99,27.99,
	   '{"size":"15 oz","color":"Black"}','`+mugCDN+`/black/front/background.png',
	   '{"width":38,"height":55,"offsetX":8,"offsetY":0}',0)`)

	tx.MustExec(`INSERT INTO product_templates(id,product_id,template_id,is_default,position) VALUES
	  ('pt_rooster_mug','prod_rooster_mug','tpl_animal_mug',1,0)`)

	return tx.Commit()
}

func fmtOptID(i int) string {
	return "opt_rooster_" + strconv.Itoa(i)
}

func fmtOptImage(i int) string {
	return "https://cdn.craftpress.test/options/rooster-" + strconv.Itoa(i) + ".png"
}
